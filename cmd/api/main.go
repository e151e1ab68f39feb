package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"sublingo_go_backend/cmd/api/config"
	"sublingo_go_backend/internal/api"
	"sublingo_go_backend/internal/auth"
	"sublingo_go_backend/internal/captions"
	"sublingo_go_backend/internal/database"
	"sublingo_go_backend/internal/services"
	"sublingo_go_backend/internal/translate"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	genaiAPIKey := os.Getenv("GOOGLE_AI_STUDIO_API_KEY")
	if genaiAPIKey == "" {
		log.Fatal("GOOGLE_AI_STUDIO_API_KEY is not set in the environment")
	}

	ctx := context.Background()
	cfg := config.NewConfig()

	database.InitDB()

	// Initialize external services clients
	stripePublicKey := os.Getenv("STRIPE_PUBLIC_KEY")
	stripeSecretKey := os.Getenv("STRIPE_SECRET_KEY")
	stripeService := services.NewStripeService(stripePublicKey, stripeSecretKey)

	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(genaiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}
	defer genaiClient.Close()

	// Initialize internal services
	captionClient := captions.NewClient()
	translateService := translate.NewService(
		genaiClient,
		cfg.GeminiModel,
		os.Getenv("OPENAI_API_KEY"),
		cfg.DefaultEngine,
		cfg.Retry,
	)

	userService := services.NewUserService(database.DB)
	creditService := services.NewCreditService(database.DB)
	cacheService := services.NewTranslationCacheService(database.DB)
	historyService := services.NewHistoryService(database.DB)

	pipelineService := services.NewPipelineService(
		captionClient,
		translateService,
		creditService,
		cacheService,
		historyService,
		cfg.Pricing,
	)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173" // Default to your local frontend
	}

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r, pipelineService, creditService, historyService, cacheService, stripeService, userService, cfg.PeriodicAllotment)
	auth.SetupRoutes(r, userService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
