package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/utils"
)

type stubInteractionService struct {
	recorded []models.Interaction
}

func (s *stubInteractionService) Record(_ context.Context, userID, matchedID string, status models.InteractionStatus) (*models.Interaction, error) {
	if status != models.InteractionMatched && status != models.InteractionSkipped {
		return nil, utils.E(utils.CodeInvalidArgument, "InteractionService.Record", "status must be matched or skipped", nil)
	}
	row := models.Interaction{ID: "row-1", UserID: userID, MatchedID: matchedID, Status: status}
	s.recorded = append(s.recorded, row)
	return &row, nil
}

func (s *stubInteractionService) ListWithProfiles(context.Context, string, models.InteractionStatus, int) ([]models.InteractionWithProfile, error) {
	out := make([]models.InteractionWithProfile, 0, len(s.recorded))
	for _, r := range s.recorded {
		out = append(out, models.InteractionWithProfile{Interaction: r})
	}
	return out, nil
}

func (s *stubInteractionService) CurrentStatus(context.Context, string, string) (*models.Interaction, error) {
	return nil, utils.E(utils.CodeNotFound, "InteractionService.CurrentStatus", "no interaction for pair", nil)
}

func interactionRouter(svc *stubInteractionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewInteractionHandler(svc)
	r.POST("/interactions", h.Record)
	r.GET("/interactions", h.List)
	r.GET("/interactions/status", h.PairStatus)
	return r
}

func TestRecordInteractionMissingFieldIs400(t *testing.T) {
	r := interactionRouter(&stubInteractionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(`{"user_id":"user-a"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordInteractionInvalidStatusIs400(t *testing.T) {
	r := interactionRouter(&stubInteractionService{})

	w := httptest.NewRecorder()
	body := `{"user_id":"user-a","matched_id":"user-c","status":"maybe"}`
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordThenListInteraction(t *testing.T) {
	svc := &stubInteractionService{}
	r := interactionRouter(svc)

	w := httptest.NewRecorder()
	body := `{"user_id":"user-a","matched_id":"user-c","status":"matched"}`
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/interactions?id=user-a", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.InteractionWithProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "user-c", rows[0].MatchedID)
}

func TestListInteractionsMissingIDIs400(t *testing.T) {
	r := interactionRouter(&stubInteractionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/interactions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPairStatusNotFoundIs404(t *testing.T) {
	r := interactionRouter(&stubInteractionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/interactions/status?id=user-a&matched_id=user-c", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
