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

type ProfileHandler struct {
	svc   services.ProfileService
	users services.UserService
}

func NewProfileHandler(svc services.ProfileService, users services.UserService) *ProfileHandler {
	return &ProfileHandler{svc: svc, users: users}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Status reports whether the caller finished onboarding.
func (h *ProfileHandler) Status(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	onboarded, err := h.users.HasProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboarded": onboarded})
}

type UpdateProfileRequest struct {
	FullName  *string          `json:"full_name,omitempty"`
	Bio       *string          `json:"bio,omitempty"`
	Goals     *string          `json:"goals,omitempty"`
	TechStack *[]string        `json:"tech_stack,omitempty"`
	Role      *models.UserRole `json:"role,omitempty"`
	School    *string          `json:"school,omitempty"`
	Major     *string          `json:"major,omitempty"`
	JobTitle  *string          `json:"job_title,omitempty"`
	Company   *string          `json:"company,omitempty"`
	GradYear  *int             `json:"grad_year,omitempty"`
	Links     *json.RawMessage `json:"links,omitempty"`
}

// Update applies a partial edit and re-embeds the profile so the vector
// entry follows the relational row.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	existing, err := h.svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Bio != nil {
		existing.Bio = *req.Bio
	}
	if req.Goals != nil {
		existing.Goals = *req.Goals
	}
	if req.TechStack != nil {
		existing.TechStack = *req.TechStack
	}
	if req.Role != nil {
		existing.Role = *req.Role
	}
	if req.School != nil {
		existing.School = *req.School
	}
	if req.Major != nil {
		existing.Major = *req.Major
	}
	if req.JobTitle != nil {
		existing.JobTitle = *req.JobTitle
	}
	if req.Company != nil {
		existing.Company = *req.Company
	}
	if req.GradYear != nil {
		existing.GradYear = *req.GradYear
	}
	if req.Links != nil {
		existing.Links = datatypes.JSON(*req.Links)
	}

	if err := h.svc.Update(c.Request.Context(), existing); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, existing)
}
