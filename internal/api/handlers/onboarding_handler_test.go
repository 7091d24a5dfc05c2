package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeematch/backend/internal/models"
)

type stubProfileService struct {
	completed []*models.Profile
}

func (s *stubProfileService) GetProfile(context.Context, string) (*models.Profile, error) {
	return nil, nil
}

func (s *stubProfileService) CompleteOnboarding(_ context.Context, p *models.Profile) error {
	s.completed = append(s.completed, p)
	return nil
}

func (s *stubProfileService) Update(context.Context, *models.Profile) error { return nil }

func (s *stubProfileService) Reindex(context.Context) (int, error) { return 0, nil }

func onboardingRouter(svc *stubProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/onboarding", NewOnboardingHandler(svc).Submit)
	return r
}

func TestOnboardingMissingIDIs400(t *testing.T) {
	svc := &stubProfileService{}
	r := onboardingRouter(svc)

	w := httptest.NewRecorder()
	body := `{"bio":"engineer","goals":"coffee","tech_stack":["Go"],"role":"Mentee"}`
	req := httptest.NewRequest(http.MethodPost, "/onboarding", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.completed)
}

func TestOnboardingSubmit(t *testing.T) {
	svc := &stubProfileService{}
	r := onboardingRouter(svc)

	w := httptest.NewRecorder()
	body := `{
		"id": "user-a",
		"full_name": "Ada L",
		"bio": "engineer",
		"goals": "coffee chats",
		"tech_stack": ["Go", "Postgres"],
		"role": "Mentee",
		"links": {"github": "https://github.com/ada"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/onboarding", strings.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.completed, 1)

	p := svc.completed[0]
	assert.Equal(t, "user-a", p.UserID)
	assert.Equal(t, models.RoleMentee, p.Role)
	assert.Equal(t, []string{"Go", "Postgres"}, []string(p.TechStack))
	assert.JSONEq(t, `{"github": "https://github.com/ada"}`, string(p.Links))
}
