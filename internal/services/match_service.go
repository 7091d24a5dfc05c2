package services

import (
	"context"
	"math"
	"strings"

	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/providers/embedding"
	"github.com/coffeematch/backend/internal/utils"
	"github.com/coffeematch/backend/internal/vectorindex"
)

type MatchService interface {
	// FindMatch returns the best eligible candidate, or (nil, nil) when
	// no eligible profile is indexed. It never writes.
	FindMatch(ctx context.Context, userID string) (*models.MatchCandidate, error)
}

type matchService struct {
	profiles ProfileService
	embedder embedding.Provider
	index    vectorindex.Index
}

func NewMatchService(profiles ProfileService, embedder embedding.Provider, index vectorindex.Index) MatchService {
	return &matchService{profiles: profiles, embedder: embedder, index: index}
}

func (s *matchService) FindMatch(ctx context.Context, userID string) (*models.MatchCandidate, error) {
	const op = "MatchService.FindMatch"

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	// A user must have completed onboarding to request a match.
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	input := embedding.BuildInput(p.Bio, p.Goals, p.TechStack)
	vector, err := s.embedder.Embed(ctx, input)
	if err != nil {
		return nil, utils.E(utils.CodeEmbeddingService, op, "failed to embed profile", err)
	}

	matches, err := s.index.Query(ctx, vector, 1, candidateFilter(userID))
	if err != nil {
		return nil, utils.E(utils.CodeVectorIndex, op, "vector query failed", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	best := matches[0]
	if math.IsNaN(best.Score) || math.IsInf(best.Score, 0) {
		best.Score = 0
	}
	return &best, nil
}

// candidateFilter is the mandatory eligibility filter: never the caller
// itself, only completed onboardings, and only the non-Mentor pool (a
// Mentor is paired with a Mentee, a Mentee with a peer Mentee).
func candidateFilter(userID string) vectorindex.Filter {
	complete := models.OnboardingComplete
	return vectorindex.Filter{
		NotIDs:           []string{userID},
		NotRoles:         []string{string(models.RoleMentor)},
		OnboardingStatus: &complete,
	}
}
