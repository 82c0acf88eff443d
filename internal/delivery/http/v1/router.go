package v1

import (
	"net/http"
	"time"

	"resumer-backend/config"
	"resumer-backend/internal/delivery/http/middleware"
	"resumer-backend/internal/delivery/http/response"
	"resumer-backend/internal/domain"
	"resumer-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CandidateUC domain.CandidateUsecase
	SearchUC    domain.SearchUsecase
	Tokens      *auth.Manager
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)

	candidateOnly := protected.Group("")
	candidateOnly.Use(middleware.RequireRole(domain.RoleCandidate))
	NewCandidateHandler(candidateOnly, deps.CandidateUC)

	recruiterOnly := protected.Group("")
	recruiterOnly.Use(middleware.RequireRole(domain.RoleRecruiter))
	NewRecruiterHandler(recruiterOnly, deps.SearchUC)

	return r
}
