package vectorindex

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/coffeematch/backend/internal/models"
)

// Memory is an in-process index with the same semantics as PGVector.
// Used by tests and local runs without Postgres.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Upsert(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	vals := make([]float32, len(e.Values))
	copy(vals, e.Values)
	e.Values = vals
	m.entries[e.ID] = e
	return nil
}

func (m *Memory) Query(_ context.Context, vector []float32, topK int, f Filter) ([]models.MatchCandidate, error) {
	if topK <= 0 {
		topK = 1
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.MatchCandidate{}
	for _, e := range m.entries {
		if !matches(e, f) {
			continue
		}
		out = append(out, models.MatchCandidate{
			ID:    e.ID,
			Score: cosineSimilarity(vector, e.Values),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}

func matches(e Entry, f Filter) bool {
	if len(f.Roles) > 0 && !contains(f.Roles, e.Metadata.Role) {
		return false
	}
	if contains(f.NotRoles, e.Metadata.Role) {
		return false
	}
	if contains(f.NotIDs, e.ID) {
		return false
	}
	if f.OnboardingStatus != nil && e.Metadata.OnboardingStatus != *f.OnboardingStatus {
		return false
	}
	return true
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
