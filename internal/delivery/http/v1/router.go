package v1

import (
	"sync"
	"time"

	"go-swipe-backend/config"
	"go-swipe-backend/internal/delivery/http/middleware"
	"go-swipe-backend/internal/domain"
	"go-swipe-backend/internal/realtime"
	"go-swipe-backend/internal/usecase"
	"go-swipe-backend/pkg/auth"
	"go-swipe-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC    domain.UserUsecase
	SwipeUC   domain.SwipeUsecase
	MatchUC   domain.MatchUsecase
	MessageUC domain.MessageUsecase
	HealthUC  usecase.HealthUsecase
	Verifier  *auth.Verifier
	Realtime  *realtime.Handler
	Config    *config.Config
}

var registerOnce sync.Once

// RegisterValidators installs the custom tags on gin's shared validator engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.RegisterValidators(v)
		}
	})
}

func NewRouter(deps RouterDeps) *gin.Engine {
	RegisterValidators()
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The socket authenticates itself from the token query parameter
	if deps.Realtime != nil {
		v1.GET("/ws", deps.Realtime.Serve)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier, deps.UserUC))
	{
		swipeLimit := middleware.RateLimitMiddleware(middleware.SwipeRateLimitConfig(cfg.RateLimitSwipeThreshold, window))
		NewSwipeHandler(protected, deps.SwipeUC, deps.MatchUC, swipeLimit)
		NewMessageHandler(protected, deps.MessageUC, deps.MatchUC)
	}

	return r
}
