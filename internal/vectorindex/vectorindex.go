package vectorindex

import (
	"context"

	"github.com/coffeematch/backend/internal/models"
)

// Entry is one indexed profile vector. ID equals the profile user_id.
type Entry struct {
	ID       string
	Values   []float32
	Metadata Metadata
}

// Metadata is stored alongside the vector and drives query filters.
type Metadata struct {
	Role             string
	OnboardingStatus int
	TechStack        []string
}

// Filter restricts candidates. All set conditions are AND-ed. A zero
// Filter matches everything.
type Filter struct {
	Roles            []string // allowed roles; empty means any
	NotRoles         []string // excluded roles
	NotIDs           []string // excluded entry ids (self-exclusion)
	OnboardingStatus *int     // exact onboarding_status
}

// Index is the vector index client. Upsert overwrites the single entry
// for an id. Query returns up to topK matches ordered by descending
// similarity; an empty result is valid and not an error.
type Index interface {
	Upsert(ctx context.Context, e Entry) error
	Query(ctx context.Context, vector []float32, topK int, f Filter) ([]models.MatchCandidate, error)
}
