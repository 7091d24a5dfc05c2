package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeematch/backend/internal/services"
)

type AdminHandler struct {
	profiles services.ProfileService
}

func NewAdminHandler(profiles services.ProfileService) *AdminHandler {
	return &AdminHandler{profiles: profiles}
}

// Reindex rebuilds the vector index from completed profiles. This is
// the reconciliation path for profiles whose index write failed at
// onboarding time.
func (h *AdminHandler) Reindex(c *gin.Context) {
	n, err := h.profiles.Reindex(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reindex complete", "indexed": n})
}
