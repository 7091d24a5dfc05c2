package vectorindex

import (
	"context"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coffeematch/backend/internal/models"
)

// PGVector backs the index with a pgvector column. Similarity is cosine:
// <=> computes cosine distance, score = 1 - distance.
type PGVector struct {
	db *gorm.DB
}

func NewPGVector(db *gorm.DB) *PGVector {
	return &PGVector{db: db}
}

func (x *PGVector) Upsert(ctx context.Context, e Entry) error {
	row := models.VectorEntry{
		ID:               e.ID,
		Embedding:        pgvector.NewVector(e.Values),
		Role:             e.Metadata.Role,
		OnboardingStatus: e.Metadata.OnboardingStatus,
		TechStack:        e.Metadata.TechStack,
		UpdatedAt:        time.Now().UTC(),
	}
	return x.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"embedding", "role", "onboarding_status", "tech_stack", "updated_at",
			}),
		}).
		Create(&row).Error
}

func (x *PGVector) Query(ctx context.Context, vector []float32, topK int, f Filter) ([]models.MatchCandidate, error) {
	if topK <= 0 {
		topK = 1
	}
	vec := pgvector.NewVector(vector)

	q := x.db.WithContext(ctx).
		Model(&models.VectorEntry{}).
		Select("id, 1 - (embedding <=> ?) AS score", vec)

	if len(f.Roles) > 0 {
		q = q.Where("role IN ?", f.Roles)
	}
	if len(f.NotRoles) > 0 {
		q = q.Where("role NOT IN ?", f.NotRoles)
	}
	if len(f.NotIDs) > 0 {
		q = q.Where("id NOT IN ?", f.NotIDs)
	}
	if f.OnboardingStatus != nil {
		q = q.Where("onboarding_status = ?", *f.OnboardingStatus)
	}

	var out []models.MatchCandidate
	err := q.
		Clauses(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []any{vec}, WithoutParentheses: true}}).
		Limit(topK).
		Scan(&out).Error
	return out, err
}
