package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/coffeematch/backend/internal/models"
	"github.com/coffeematch/backend/internal/services"
	"github.com/coffeematch/backend/internal/utils"
)

type OnboardingHandler struct {
	svc services.ProfileService
}

func NewOnboardingHandler(svc services.ProfileService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

type OnboardingRequest struct {
	ID        string          `json:"id" binding:"required"`
	FullName  string          `json:"full_name"`
	Bio       string          `json:"bio"`
	Goals     string          `json:"goals"`
	TechStack []string        `json:"tech_stack"`
	Role      models.UserRole `json:"role" binding:"required"`
	School    string          `json:"school"`
	Major     string          `json:"major"`
	JobTitle  string          `json:"job_title"`
	Company   string          `json:"company"`
	GradYear  int             `json:"grad_year"`
	Links     json.RawMessage `json:"links"`
}

// Submit handles POST /onboarding: profile upsert, then embed + vector
// upsert. Resubmission overwrites both stores.
func (h *OnboardingHandler) Submit(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "OnboardingHandler.Submit", "invalid request body", err))
		return
	}

	p := &models.Profile{
		UserID:    req.ID,
		FullName:  req.FullName,
		Bio:       req.Bio,
		Goals:     req.Goals,
		TechStack: req.TechStack,
		Role:      req.Role,
		School:    req.School,
		Major:     req.Major,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		GradYear:  req.GradYear,
	}
	if len(req.Links) > 0 {
		p.Links = datatypes.JSON(req.Links)
	}

	if err := h.svc.CompleteOnboarding(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}
