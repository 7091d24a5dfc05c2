package models

import "time"

type InteractionStatus string

const (
	InteractionMatched InteractionStatus = "matched"
	InteractionSkipped InteractionStatus = "skipped"
)

// Interaction rows are an append-only event log. A pair may accumulate
// multiple rows; the latest one wins.
type Interaction struct {
	ID        string            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string            `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	MatchedID string            `gorm:"column:matched_id;type:uuid" json:"matched_id"`
	Status    InteractionStatus `gorm:"column:status;type:text" json:"status"`
	CreatedAt time.Time         `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Interaction) TableName() string { return "interactions" }

// InteractionWithProfile joins an interaction row with the matched
// user's profile for history views.
type InteractionWithProfile struct {
	Interaction
	MatchedProfile *Profile `json:"matched_profile,omitempty"`
}
