package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/coffeematch/backend/config"
	"github.com/coffeematch/backend/internal/api/handlers"
	"github.com/coffeematch/backend/internal/api/middleware"
	"github.com/coffeematch/backend/internal/api/routes"
	"github.com/coffeematch/backend/internal/cache"
	"github.com/coffeematch/backend/internal/logger"
	"github.com/coffeematch/backend/internal/providers/embedding"
	pgrepo "github.com/coffeematch/backend/internal/repositories/postgres"
	"github.com/coffeematch/backend/internal/services"
	"github.com/coffeematch/backend/internal/vectorindex"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Init Redis
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	embedder, err := embedding.NewOpenAI(os.Getenv("OPENAI_API_KEY"), os.Getenv("EMBEDDING_MODEL"))
	if err != nil {
		log.Fatalf("Embedding provider init error: %v", err)
	}
	defer embedder.Close()

	db := config.PostgresDB
	index := vectorindex.NewPGVector(db)
	redisCache := cache.NewRedisCache(config.RedisClient)

	profileRepo := pgrepo.NewProfileRepo(db)
	interactionRepo := pgrepo.NewInteractionRepo(db)
	userRepo := pgrepo.NewUserRepo(db)

	profileSvc := services.NewProfileService(profileRepo, embedder, index, redisCache)
	matchSvc := services.NewMatchService(profileSvc, embedder, index)
	interactionSvc := services.NewInteractionService(interactionRepo, profileSvc)
	userSvc := services.NewUserService(userRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Match:       handlers.NewMatchHandler(matchSvc),
		Onboarding:  handlers.NewOnboardingHandler(profileSvc),
		Interaction: handlers.NewInteractionHandler(interactionSvc),
		Profile:     handlers.NewProfileHandler(profileSvc, userSvc),
		Admin:       handlers.NewAdminHandler(profileSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
