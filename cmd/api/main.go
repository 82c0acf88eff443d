package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumer-backend/config"
	_ "resumer-backend/docs" // Important for Swagger
	v1 "resumer-backend/internal/delivery/http/v1"
	"resumer-backend/internal/repository/postgres"
	"resumer-backend/internal/usecase"
	"resumer-backend/pkg/auth"
	"resumer-backend/pkg/database"
	"resumer-backend/pkg/logger"
	"resumer-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Resumer Backend API
// @version         1.0
// @description     Resume storage and recruiter search backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resumer backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	tokens := auth.NewManager(cfg.JWTSecret)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	candidateUC := usecase.NewCandidateUsecase(resumeRepo, validate)
	searchUC := usecase.NewSearchUsecase(resumeRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CandidateUC: candidateUC,
		SearchUC:    searchUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
