package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/utils"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	err      error
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	m := make(map[string]*models.Profile)
	for _, p := range profiles {
		cp := *p
		m[p.UserID] = &cp
	}
	return &fakeProfileRepo{profiles: m}
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p *models.Profile) error {
	if f.err != nil {
		return f.err
	}
	cp := *p
	f.profiles[p.UserID] = &cp
	return nil
}

func (f *fakeProfileRepo) ListCompleted(_ context.Context) ([]models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Profile
	for _, p := range f.profiles {
		if p.OnboardingStatus == models.OnboardingComplete {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

type fakeInteractionRepo struct {
	rows []models.Interaction
	err  error
}

func (f *fakeInteractionRepo) Insert(_ context.Context, row *models.Interaction) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *row)
	return nil
}

func (f *fakeInteractionRepo) ListByUser(_ context.Context, userID string, status models.InteractionStatus, limit int) ([]models.Interaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit <= 0 {
		limit = 50
	}
	var out []models.Interaction
	for _, r := range f.rows {
		if r.UserID != userID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeInteractionRepo) LatestByPair(_ context.Context, userID, matchedID string) (*models.Interaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var latest *models.Interaction
	for i := range f.rows {
		r := f.rows[i]
		if r.UserID != userID || r.MatchedID != matchedID {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			cp := r
			latest = &cp
		}
	}
	if latest == nil {
		return nil, utils.ErrNotFound
	}
	return latest, nil
}

// fakeEmbedder maps known inputs to fixed vectors, so similarity in
// tests is fully controlled. Unknown inputs get a unit default.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, input string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[input]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) Close() error { return nil }

type fakeCache struct {
	data map[string][]byte
	sets int
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	f.hits++
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.data[key] = b
	f.sets++
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}
