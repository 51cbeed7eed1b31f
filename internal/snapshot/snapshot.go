package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"internmatch/internal/config"
)

// ErrInvalidName is returned for usernames that cannot be used as an object name.
var ErrInvalidName = errors.New("invalid snapshot name")

// Store persists the JSON document of a student's profile after each update.
type Store interface {
	Save(ctx context.Context, username string, profile any) error
}

// New builds the store selected by cfg.SnapshotBackend: file, s3 or none.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.SnapshotBackend) {
	case "", "file":
		return NewFileStore(cfg.SnapshotDir), nil
	case "s3":
		return NewS3Store(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "none", "noop":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
}

// Nop discards snapshots.
type Nop struct{}

func (Nop) Save(context.Context, string, any) error { return nil }

func objectName(username string) (string, error) {
	if username == "" || username == "." || username == ".." || strings.ContainsAny(username, `/\`) {
		return "", ErrInvalidName
	}
	return username + ".json", nil
}

func encode(profile any) ([]byte, error) {
	doc, err := json.MarshalIndent(profile, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return doc, nil
}
