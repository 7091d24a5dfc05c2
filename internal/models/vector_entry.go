package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// EmbeddingDim is fixed by the embedding model (text-embedding-3-small).
const EmbeddingDim = 1536

// VectorEntry is one row of the vector index. ID equals the profile's
// user_id; re-upserting overwrites, no history is kept.
type VectorEntry struct {
	ID        string          `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Embedding pgvector.Vector `gorm:"column:embedding;type:vector(1536)" json:"-"`

	Role             string         `gorm:"column:role;type:text" json:"role"`
	OnboardingStatus int            `gorm:"column:onboarding_status" json:"onboarding_status"`
	TechStack        pq.StringArray `gorm:"column:tech_stack;type:text[]" json:"tech_stack"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (VectorEntry) TableName() string { return "vector_entries" }
