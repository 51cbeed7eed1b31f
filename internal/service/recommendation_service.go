package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"internmatch/internal/auth"
	"internmatch/internal/cache"
	apperrors "internmatch/internal/errors"
	"internmatch/internal/model"
	"internmatch/internal/ranker"
	"internmatch/internal/repository"
)

const recommendationKeyPrefix = "recommendation:"

// RecommendedInternship is one ranked internship with the model's reason.
type RecommendedInternship struct {
	ID          string `json:"id"`
	ProgramName string `json:"program_name"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	AIReason    string `json:"ai_reason"`
}

// Recommendation is the result of one ranking run for a student.
type Recommendation struct {
	Student         string                  `json:"student"`
	BioSummary      string                  `json:"bio_summary"`
	Recommendations []RecommendedInternship `json:"recommendations"`
}

// RecommendationService ranks the catalog against a student's profile.
type RecommendationService interface {
	Recommend(ctx context.Context, caller *auth.Identity) (*Recommendation, error)
}

type recommendationService struct {
	userRepo       repository.UserRepository
	internshipRepo repository.InternshipRepository
	ranker         ranker.Ranker
	cache          *cache.Client
	cacheTTL       time.Duration
	timeout        time.Duration
}

// NewRecommendationService creates a new recommendation service.
// A positive cacheTTL memoizes rankings per profile and catalog; timeout bounds each ranking call.
func NewRecommendationService(
	userRepo repository.UserRepository,
	internshipRepo repository.InternshipRepository,
	rk ranker.Ranker,
	cacheClient *cache.Client,
	cacheTTL time.Duration,
	timeout time.Duration,
) RecommendationService {
	return &recommendationService{
		userRepo:       userRepo,
		internshipRepo: internshipRepo,
		ranker:         rk,
		cache:          cacheClient,
		cacheTTL:       cacheTTL,
		timeout:        timeout,
	}
}

// Recommend runs the pipeline once. There is no retry and no unranked fallback.
func (s *recommendationService) Recommend(ctx context.Context, caller *auth.Identity) (*Recommendation, error) {
	if caller == nil {
		return nil, apperrors.Unauthorized("Invalid or missing auth token")
	}
	if !caller.IsStudent() {
		return nil, apperrors.Forbidden("Recommendations are only available to students")
	}

	user, err := s.userRepo.FindByUsername(ctx, caller.Student.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal(err, "load student profile")
	}
	bio := BuildBio(user)

	internships, err := s.internshipRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "load internships")
	}
	if len(internships) == 0 {
		return nil, apperrors.NotFound("No internships available")
	}
	if len(internships) > ranker.MaxCandidates {
		internships = internships[:ranker.MaxCandidates]
	}

	candidates := make([]ranker.Candidate, len(internships))
	for i, in := range internships {
		candidates[i] = ranker.Candidate{Index: i, Name: in.Name, Description: in.Description}
	}

	matches, err := s.rank(ctx, bio, candidates)
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("ranking failed")
		return nil, apperrors.Upstream(err, "Could not generate recommendations")
	}
	if len(matches) == 0 {
		return nil, apperrors.Upstream(nil, "Could not generate recommendations")
	}

	return &Recommendation{
		Student:         displayName(user),
		BioSummary:      bio,
		Recommendations: mapMatches(matches, internships),
	}, nil
}

func (s *recommendationService) rank(ctx context.Context, bio string, candidates []ranker.Candidate) ([]ranker.Match, error) {
	key := ""
	if s.cacheTTL > 0 {
		key = recommendationKeyPrefix + fingerprint(bio, candidates)
		var cached []ranker.Match
		if s.cache.GetJSON(ctx, key, &cached) && len(cached) > 0 {
			return cached, nil
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	matches, err := s.ranker.Rank(ctx, bio, candidates)
	if err != nil {
		return nil, err
	}

	if key != "" && len(matches) > 0 {
		_ = s.cache.SetJSON(ctx, key, matches, s.cacheTTL)
	}
	return matches, nil
}

// mapMatches resolves positional ids to persisted internships. Out-of-range ids are skipped.
func mapMatches(matches []ranker.Match, internships []model.Internship) []RecommendedInternship {
	out := make([]RecommendedInternship, 0, ranker.MaxMatches)
	for _, m := range matches {
		if len(out) == ranker.MaxMatches {
			break
		}
		if m.Index < 0 || m.Index >= len(internships) {
			log.Debug().Int("id", m.Index).Msg("ranking returned unknown candidate, skipping")
			continue
		}
		in := internships[m.Index]
		out = append(out, RecommendedInternship{
			ID:          in.ID.String(),
			ProgramName: in.Name,
			Company:     in.Organization,
			Location:    in.Location,
			Description: in.Description,
			URL:         in.URL,
			AIReason:    m.Reason,
		})
	}
	return out
}

func fingerprint(bio string, candidates []ranker.Candidate) string {
	h := sha256.New()
	h.Write([]byte(bio))
	h.Write([]byte{0})
	h.Write([]byte(ranker.FormatCandidates(candidates)))
	return hex.EncodeToString(h.Sum(nil))
}
