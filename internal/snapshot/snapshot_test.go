package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"internmatch/internal/config"
)

type profile struct {
	Username string `json:"username"`
	School   string `json:"school"`
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profile_data")
	store := NewFileStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "jdoe", profile{Username: "jdoe", School: "North"}))
	require.NoError(t, store.Save(ctx, "jdoe", profile{Username: "jdoe", School: "South"}))

	data, err := os.ReadFile(filepath.Join(dir, "jdoe.json"))
	require.NoError(t, err)

	var got profile
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "South", got.School)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store := NewFileStore(t.TempDir())
	for _, name := range []string{"", "..", "../etc/passwd", `a\b`} {
		err := store.Save(context.Background(), name, profile{})
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

type MockPutter struct {
	mock.Mock
}

func (m *MockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestS3Store_Save(t *testing.T) {
	tests := []struct {
		name      string
		putErr    error
		expectErr bool
	}{
		{"success", nil, false},
		{"put fails", errors.New("access denied"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			putter := new(MockPutter)
			var out *s3.PutObjectOutput
			if tt.putErr == nil {
				out = &s3.PutObjectOutput{}
			}
			var body []byte
			putter.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
				return aws.ToString(in.Bucket) == "snapshots" &&
					aws.ToString(in.Key) == "profiles/jdoe.json"
			})).Run(func(args mock.Arguments) {
				in := args.Get(1).(*s3.PutObjectInput)
				body, _ = io.ReadAll(in.Body)
			}).Return(out, tt.putErr)

			store := &S3Store{client: putter, bucket: "snapshots"}
			err := store.Save(context.Background(), "jdoe", profile{Username: "jdoe"})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.JSONEq(t, `{"username":"jdoe","school":""}`, string(body))
			putter.AssertExpectations(t)
		})
	}
}

func TestNewS3Store_RequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Options{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	cfg := config.Defaults()
	cfg.SnapshotDir = t.TempDir()

	store, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	cfg.SnapshotBackend = "none"
	store, err = New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, Nop{}, store)

	cfg.SnapshotBackend = "ftp"
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}
