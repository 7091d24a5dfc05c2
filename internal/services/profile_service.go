package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/coffeematch/backend/internal/cache"
	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/providers/embedding"
	pgrepo "github.com/coffeematch/backend/internal/repositories/postgres"
	"github.com/coffeematch/backend/internal/utils"
	"github.com/coffeematch/backend/internal/vectorindex"
)

const profileCacheTTL = 5 * time.Minute

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	CompleteOnboarding(ctx context.Context, p *models.Profile) error
	Update(ctx context.Context, p *models.Profile) error
	Reindex(ctx context.Context) (int, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	embedder embedding.Provider
	index    vectorindex.Index
	cache    cache.Cache
}

func NewProfileService(profiles pgrepo.ProfileRepository, embedder embedding.Provider, index vectorindex.Index, c cache.Cache) ProfileService {
	return &profileService{profiles: profiles, embedder: embedder, index: index, cache: c}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.GetProfile"

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	key := "profile:" + userID
	if s.cache != nil {
		var cached models.Profile
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, p, profileCacheTTL)
	}
	return p, nil
}

// CompleteOnboarding writes the profile row, then embeds it and upserts
// the vector entry that makes the user discoverable. The two writes are
// not transactional; a failed index write surfaces to the caller, and
// resubmission (or the reindex job) heals the gap since both writes are
// idempotent per user id.
func (s *profileService) CompleteOnboarding(ctx context.Context, p *models.Profile) error {
	const op = "ProfileService.CompleteOnboarding"

	if err := validateProfile(op, p); err != nil {
		return err
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.OnboardingStatus = models.OnboardingComplete

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	s.invalidate(ctx, p.UserID)

	return s.indexProfile(ctx, op, p)
}

// Update re-saves an edited profile and re-embeds it so the index stays
// aligned with the relational row.
func (s *profileService) Update(ctx context.Context, p *models.Profile) error {
	const op = "ProfileService.Update"

	if err := validateProfile(op, p); err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	s.invalidate(ctx, p.UserID)

	if p.OnboardingStatus != models.OnboardingComplete {
		return nil
	}
	return s.indexProfile(ctx, op, p)
}

// Reindex re-embeds every completed profile and upserts its vector
// entry, healing entries lost to failed onboarding index writes.
func (s *profileService) Reindex(ctx context.Context) (int, error) {
	const op = "ProfileService.Reindex"

	rows, err := s.profiles.ListCompleted(ctx)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
	}

	for i := range rows {
		if err := s.indexProfile(ctx, op, &rows[i]); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}

func (s *profileService) indexProfile(ctx context.Context, op string, p *models.Profile) error {
	input := embedding.BuildInput(p.Bio, p.Goals, p.TechStack)
	vector, err := s.embedder.Embed(ctx, input)
	if err != nil {
		return utils.E(utils.CodeEmbeddingService, op, "failed to embed profile", err)
	}

	entry := vectorindex.Entry{
		ID:     p.UserID,
		Values: vector,
		Metadata: vectorindex.Metadata{
			Role:             string(p.Role),
			OnboardingStatus: p.OnboardingStatus,
			TechStack:        p.TechStack,
		},
	}
	if err := s.index.Upsert(ctx, entry); err != nil {
		return utils.E(utils.CodeVectorIndex, op, "failed to upsert vector entry", err)
	}
	return nil
}

func (s *profileService) invalidate(ctx context.Context, userID string) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, "profile:"+userID)
	}
}

func validateProfile(op string, p *models.Profile) error {
	if p == nil || strings.TrimSpace(p.UserID) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "profile.user_id is required", nil)
	}
	if p.Role != models.RoleMentee && p.Role != models.RoleMentor {
		return utils.E(utils.CodeInvalidArgument, op, "role must be Mentee or Mentor", nil)
	}
	p.UserID = strings.TrimSpace(p.UserID)
	return nil
}
