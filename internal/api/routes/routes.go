package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coffeematch/backend/internal/api/handlers"
	"github.com/coffeematch/backend/internal/api/middleware"
)

type Deps struct {
	Match       *handlers.MatchHandler
	Onboarding  *handlers.OnboardingHandler
	Interaction *handlers.InteractionHandler
	Profile     *handlers.ProfileHandler
	Admin       *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Matching pipeline; user ids are explicit request parameters.
	r.GET("/match", d.Match.Find)
	r.POST("/onboarding", d.Onboarding.Submit)
	r.POST("/interactions", d.Interaction.Record)
	r.GET("/interactions", d.Interaction.List)
	r.GET("/interactions/status", d.Interaction.PairStatus)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/profile/me", d.Profile.Me)
	auth.GET("/profile/status", d.Profile.Status)
	auth.PUT("/profile/update", d.Profile.Update)

	auth.POST("/admin/reindex", middleware.RequireAdmin(), d.Admin.Reindex)
}
