package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/utils"
)

type stubMatchService struct {
	candidate *models.MatchCandidate
	err       error
}

func (s *stubMatchService) FindMatch(context.Context, string) (*models.MatchCandidate, error) {
	return s.candidate, s.err
}

func matchRouter(svc *stubMatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/match", NewMatchHandler(svc).Find)
	return r
}

func TestMatchMissingIDIs400(t *testing.T) {
	r := matchRouter(&stubMatchService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/match", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, utils.CodeInvalidArgument, body.Code)
}

func TestMatchFound(t *testing.T) {
	r := matchRouter(&stubMatchService{candidate: &models.MatchCandidate{ID: "user-c", Score: 0.87}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/match?id=user-a", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-c", body.ID)
	assert.InDelta(t, 0.87, body.Score, 1e-9)
}

func TestMatchNoCandidateIs200(t *testing.T) {
	r := matchRouter(&stubMatchService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/match?id=user-a", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "no match found", body["message"])
}

func TestMatchDownstreamFailureDoesNotLeakProviderError(t *testing.T) {
	r := matchRouter(&stubMatchService{
		err: utils.E(utils.CodeVectorIndex, "MatchService.FindMatch", "vector query failed", assert.AnError),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/match?id=user-a", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, utils.CodeVectorIndex, body.Code)
	assert.Equal(t, "vector query failed", body.Message)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
