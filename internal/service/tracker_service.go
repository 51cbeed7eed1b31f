package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	apperrors "internmatch/internal/errors"
	"internmatch/internal/model"
	"internmatch/internal/repository"
	"internmatch/internal/validation"
)

// CreateTrackerInput starts tracking an internship. The internship id is not checked against the catalog.
type CreateTrackerInput struct {
	InternshipID string `json:"internshipId" validate:"required"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

// UpdateTrackerInput changes status and/or notes. An absent or null field is left untouched.
// Status and Notes stay undecoded until the caller is known to own the tracker.
type UpdateTrackerInput struct {
	ID     string          `json:"id" validate:"required"`
	Status json.RawMessage `json:"status" swaggertype:"string"`
	Notes  json.RawMessage `json:"notes" swaggertype:"string"`
}

// TrackerService manages a student's application tracker.
type TrackerService interface {
	List(ctx context.Context, username string) ([]model.Tracker, error)
	Create(ctx context.Context, username string, in CreateTrackerInput) (*model.Tracker, error)
	Update(ctx context.Context, username string, in UpdateTrackerInput) (*model.Tracker, error)
}

type trackerService struct {
	trackerRepo repository.TrackerRepository
}

// NewTrackerService creates a new tracker service.
func NewTrackerService(trackerRepo repository.TrackerRepository) TrackerService {
	return &trackerService{trackerRepo: trackerRepo}
}

func (s *trackerService) List(ctx context.Context, username string) ([]model.Tracker, error) {
	trackers, err := s.trackerRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Internal(err, "list trackers")
	}
	return trackers, nil
}

func (s *trackerService) Create(ctx context.Context, username string, in CreateTrackerInput) (*model.Tracker, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.DefaultTrackerStatus
	}

	tracker := &model.Tracker{
		Username:     username,
		InternshipID: in.InternshipID,
		Status:       status,
		Notes:        in.Notes,
	}
	if err := s.trackerRepo.Create(ctx, tracker); err != nil {
		return nil, apperrors.Internal(err, "create tracker")
	}

	log.Info().Str("username", username).Str("tracker_id", tracker.ID.String()).Msg("tracker created")
	return tracker, nil
}

// Update applies status and notes independently. Ownership is checked before anything else in the payload.
func (s *trackerService) Update(ctx context.Context, username string, in UpdateTrackerInput) (*model.Tracker, error) {
	if in.ID == "" {
		return nil, apperrors.Validation("Tracker ID is required")
	}

	tracker, err := s.trackerRepo.FindByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Tracker not found")
		}
		return nil, apperrors.Internal(err, "find tracker")
	}
	if tracker.Username != username {
		return nil, apperrors.Forbidden("Not authorized to update this tracker")
	}

	fields := make(map[string]interface{})
	for column, raw := range map[string]json.RawMessage{"status": in.Status, "notes": in.Notes} {
		text, ok, err := trackerText(raw)
		if err != nil {
			return nil, apperrors.Validation("Field '%s' must be text", column)
		}
		if ok {
			fields[column] = text
		}
	}
	if len(fields) == 0 {
		return tracker, nil
	}

	if err := s.trackerRepo.UpdateFields(ctx, in.ID, fields); err != nil {
		return nil, apperrors.Internal(err, "update tracker")
	}

	updated, err := s.trackerRepo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, apperrors.Internal(err, "reload tracker")
	}
	return updated, nil
}

func trackerText(raw json.RawMessage) (string, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false, nil
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return "", false, err
	}
	return text, true, nil
}
