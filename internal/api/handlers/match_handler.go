package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeematch/backend/internal/services"
	"github.com/coffeematch/backend/internal/utils"
)

type MatchHandler struct {
	svc services.MatchService
}

func NewMatchHandler(svc services.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

type MatchResponse struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Find handles GET /match?id=<userId>. An empty candidate pool is a
// 200 with a message, not an error.
func (h *MatchHandler) Find(c *gin.Context) {
	userID := c.Query("id")
	if userID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MatchHandler.Find", "id query parameter is required", nil))
		return
	}

	candidate, err := h.svc.FindMatch(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if candidate == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no match found"})
		return
	}

	c.JSON(http.StatusOK, MatchResponse{ID: candidate.ID, Score: candidate.Score})
}
