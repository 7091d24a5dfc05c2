package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/utils"
)

type InteractionRepository interface {
	Insert(ctx context.Context, row *models.Interaction) error
	ListByUser(ctx context.Context, userID string, status models.InteractionStatus, limit int) ([]models.Interaction, error)
	LatestByPair(ctx context.Context, userID, matchedID string) (*models.Interaction, error)
}

type interactionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) Insert(ctx context.Context, row *models.Interaction) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *interactionRepo) ListByUser(ctx context.Context, userID string, status models.InteractionStatus, limit int) ([]models.Interaction, error) {
	if limit <= 0 {
		limit = 50
	}

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []models.Interaction
	err := q.Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// LatestByPair resolves the current state of a pair under event-log
// semantics: the most recent row wins.
func (r *interactionRepo) LatestByPair(ctx context.Context, userID, matchedID string) (*models.Interaction, error) {
	var row models.Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND matched_id = ?", userID, matchedID).
		Order("created_at DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}
