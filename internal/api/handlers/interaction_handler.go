package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/services"
	"github.com/coffeematch/backend/internal/utils"
)

type InteractionHandler struct {
	svc services.InteractionService
}

func NewInteractionHandler(svc services.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

type RecordInteractionRequest struct {
	UserID    string                   `json:"user_id" binding:"required"`
	MatchedID string                   `json:"matched_id" binding:"required"`
	Status    models.InteractionStatus `json:"status" binding:"required"`
}

// Record handles POST /interactions: one append-only row per decision.
func (h *InteractionHandler) Record(c *gin.Context) {
	var req RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InteractionHandler.Record", "invalid request body", err))
		return
	}

	row, err := h.svc.Record(c.Request.Context(), req.UserID, req.MatchedID, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "interaction saved", "id": row.ID})
}

// List handles GET /interactions?id=&status=&limit= and joins each row
// with the matched user's profile, latest first.
func (h *InteractionHandler) List(c *gin.Context) {
	userID := c.Query("id")
	if userID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InteractionHandler.List", "id query parameter is required", nil))
		return
	}

	status := models.InteractionStatus(c.Query("status"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := h.svc.ListWithProfiles(c.Request.Context(), userID, status, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// PairStatus handles GET /interactions/status?id=&matched_id= and
// reports the latest decision for the pair.
func (h *InteractionHandler) PairStatus(c *gin.Context) {
	userID := c.Query("id")
	matchedID := c.Query("matched_id")
	if userID == "" || matchedID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InteractionHandler.PairStatus", "id and matched_id query parameters are required", nil))
		return
	}

	row, err := h.svc.CurrentStatus(c.Request.Context(), userID, matchedID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}
