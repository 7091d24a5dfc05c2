package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coffeematch/backend/internal/models"
	pgrepo "github.com/coffeematch/backend/internal/repositories/postgres"
	"github.com/coffeematch/backend/internal/utils"
)

type InteractionService interface {
	Record(ctx context.Context, userID, matchedID string, status models.InteractionStatus) (*models.Interaction, error)
	ListWithProfiles(ctx context.Context, userID string, status models.InteractionStatus, limit int) ([]models.InteractionWithProfile, error)
	CurrentStatus(ctx context.Context, userID, matchedID string) (*models.Interaction, error)
}

type interactionService struct {
	interactions pgrepo.InteractionRepository
	profiles     ProfileService
}

func NewInteractionService(interactions pgrepo.InteractionRepository, profiles ProfileService) InteractionService {
	return &interactionService{interactions: interactions, profiles: profiles}
}

func (s *interactionService) Record(ctx context.Context, userID, matchedID string, status models.InteractionStatus) (*models.Interaction, error) {
	const op = "InteractionService.Record"

	userID = strings.TrimSpace(userID)
	matchedID = strings.TrimSpace(matchedID)
	if userID == "" || matchedID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and matched_id are required", nil)
	}
	if status != models.InteractionMatched && status != models.InteractionSkipped {
		return nil, utils.E(utils.CodeInvalidArgument, op, "status must be matched or skipped", nil)
	}

	row := &models.Interaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		MatchedID: matchedID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.interactions.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save interaction", err)
	}
	return row, nil
}

// ListWithProfiles returns the user's interactions, latest first, each
// joined with the matched user's profile. A matched profile that has
// since vanished is returned with a nil profile rather than failing the
// whole listing.
func (s *interactionService) ListWithProfiles(ctx context.Context, userID string, status models.InteractionStatus, limit int) ([]models.InteractionWithProfile, error) {
	const op = "InteractionService.ListWithProfiles"

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if status != "" && status != models.InteractionMatched && status != models.InteractionSkipped {
		return nil, utils.E(utils.CodeInvalidArgument, op, "status must be matched or skipped", nil)
	}

	rows, err := s.interactions.ListByUser(ctx, userID, status, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interactions", err)
	}

	out := make([]models.InteractionWithProfile, 0, len(rows))
	for _, row := range rows {
		item := models.InteractionWithProfile{Interaction: row}
		p, err := s.profiles.GetProfile(ctx, row.MatchedID)
		if err != nil && !utils.IsCode(err, utils.CodeNotFound) {
			return nil, err
		}
		item.MatchedProfile = p
		out = append(out, item)
	}
	return out, nil
}

// CurrentStatus resolves a pair's state under event-log semantics: the
// latest interaction row wins.
func (s *interactionService) CurrentStatus(ctx context.Context, userID, matchedID string) (*models.Interaction, error) {
	const op = "InteractionService.CurrentStatus"

	userID = strings.TrimSpace(userID)
	matchedID = strings.TrimSpace(matchedID)
	if userID == "" || matchedID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and matched_id are required", nil)
	}

	row, err := s.interactions.LatestByPair(ctx, userID, matchedID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "no interaction for pair", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interaction", err)
	}
	return row, nil
}
