package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"internmatch/internal/auth"
	apperrors "internmatch/internal/errors"
	"internmatch/internal/model"
	"internmatch/internal/repository"
	"internmatch/internal/validation"
)

// CreateInternshipInput is the payload an admin submits to publish an internship.
type CreateInternshipInput struct {
	Name         string `json:"name" validate:"required"`
	Organization string `json:"organization" validate:"required"`
	URL          string `json:"Url"`
	Contact      string `json:"contact" validate:"required"`
	Deadline     string `json:"deadline" validate:"required"`
	Category     string `json:"category" validate:"required,max=128"`
	Location     string `json:"location" validate:"required"`
	Description  string `json:"description" validate:"required"`
}

// CatalogService exposes the internship catalog. Only admins may add to it; nothing is ever updated or removed.
type CatalogService interface {
	ListAll(ctx context.Context) ([]model.Internship, error)
	Search(ctx context.Context, keyword string) ([]model.Internship, error)
	FilterByCategory(ctx context.Context, category string) ([]model.Internship, error)
	Create(ctx context.Context, caller *auth.Identity, in CreateInternshipInput) (*model.Internship, error)
}

type catalogService struct {
	internshipRepo repository.InternshipRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(internshipRepo repository.InternshipRepository) CatalogService {
	return &catalogService{internshipRepo: internshipRepo}
}

func (s *catalogService) ListAll(ctx context.Context) ([]model.Internship, error) {
	internships, err := s.internshipRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "list internships")
	}
	return internships, nil
}

func (s *catalogService) Search(ctx context.Context, keyword string) ([]model.Internship, error) {
	internships, err := s.internshipRepo.Search(ctx, keyword)
	if err != nil {
		return nil, apperrors.Internal(err, "search internships")
	}
	return internships, nil
}

func (s *catalogService) FilterByCategory(ctx context.Context, category string) ([]model.Internship, error) {
	internships, err := s.internshipRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, apperrors.Internal(err, "filter internships")
	}
	return internships, nil
}

// Create publishes an internship owned by the calling admin.
func (s *catalogService) Create(ctx context.Context, caller *auth.Identity, in CreateInternshipInput) (*model.Internship, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.Unauthorized("Invalid or missing admin auth token")
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	internship := &model.Internship{
		Name:         in.Name,
		Organization: in.Organization,
		URL:          in.URL,
		Contact:      in.Contact,
		Deadline:     in.Deadline,
		Category:     in.Category,
		Location:     in.Location,
		Description:  in.Description,
		CreatorID:    caller.Admin.Username,
	}
	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, apperrors.Internal(err, "create internship")
	}

	log.Info().
		Str("id", internship.ID.String()).
		Str("creator", internship.CreatorID).
		Str("category", internship.Category).
		Msg("internship created")
	return internship, nil
}
