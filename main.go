package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"neighborwatch-be/config"
	"neighborwatch-be/controllers"
	"neighborwatch-be/middlewares"
	"neighborwatch-be/models"
	"neighborwatch-be/rewards"
	"neighborwatch-be/routes"
	"neighborwatch-be/session"
	"neighborwatch-be/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	issueStore := store.NewIssueStore()
	accounts, err := store.NewAccountRegistry()
	if err != nil {
		log.Fatalf("Failed to seed accounts: %v", err)
	}
	ledger := rewards.NewLedger(issueStore)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	authority := middlewares.RequireRole(session.RoleAuthority)
	limiter := reportLimiter(cfg)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("issuecategory", func(fl validator.FieldLevel) bool {
			return models.IssueCategory(fl.Field().String()).Valid()
		})
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRoutes(r, controllers.NewAuthController(accounts, ledger, cfg), auth)
	routes.IssueRoutes(r, controllers.NewIssueController(issueStore, accounts), auth, authority, limiter)
	routes.RewardRoutes(r, controllers.NewRewardController(ledger), auth)
	routes.CommunityRoutes(r, controllers.NewCommunityController(issueStore, accounts, ledger), auth)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// reportLimiter wires the Redis-backed submission limiter. Without a
// configured Redis address the limiter is a pass-through, so local runs
// against the in-memory store don't need Redis.
func reportLimiter(cfg *config.Config) gin.HandlerFunc {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDRESS not set, report rate limiting disabled")
		return func(c *gin.Context) { c.Next() }
	}

	client, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	return middlewares.ReportRateLimiter(middlewares.NewRedisCounter(client), cfg.ReportLimitPrefix, cfg.ReportLimitPerDay)
}
