package main

import (
	"context"
	"encoding/json"
	"net/http"

	"codecollab_server/config"
	"codecollab_server/logger"
	"codecollab_server/routes"
	"codecollab_server/services"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// Initialize DynamoDB client and service
	dynamoClient, err := services.InitializeDynamoDBClient(context.Background(), cfg.AWSRegion)
	if err != nil {
		log.Fatal("failed to initialize DynamoDB client", zap.Error(err))
	}
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Info("DynamoDB client initialized", zap.String("region", cfg.AWSRegion))

	// Optional Redis cache for dashboard recommendations
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		log.Info("recommendation cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	// Repositories
	projectRepo := &services.DynamoProjectRepository{Dynamo: dynamoService}
	userRepo := &services.DynamoUserRepository{Dynamo: dynamoService}
	interestRepo := &services.DynamoInterestRepository{Dynamo: dynamoService}
	notificationRepo := &services.DynamoNotificationRepository{Dynamo: dynamoService}

	// Services
	userProfileService := &services.UserProfileService{Users: userRepo, Log: log}
	notificationService := &services.NotificationService{Notifications: notificationRepo, Log: log}
	projectService := &services.ProjectService{
		Projects:  projectRepo,
		Interests: interestRepo,
		Cache:     cache,
		CacheTTL:  cfg.RecommendCacheTTL,
		Log:       log,
	}
	interestService := &services.InterestService{
		Interests:     interestRepo,
		Projects:      projectRepo,
		Users:         userRepo,
		Notifications: notificationService,
		Log:           log,
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterProjectRoutes(r, projectService, interestService, userProfileService)
	routes.RegisterInterestRoutes(r, interestService, userProfileService)
	routes.RegisterNotificationRoutes(r, notificationService, userProfileService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-Email"},
		AllowCredentials: true,
	}).Handler(r)

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
