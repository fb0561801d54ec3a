package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-swipe-backend/config"
	_ "go-swipe-backend/docs" // Important for Swagger
	v1 "go-swipe-backend/internal/delivery/http/v1"
	"go-swipe-backend/internal/database/migration"
	"go-swipe-backend/internal/realtime"
	"go-swipe-backend/internal/repository/postgres"
	"go-swipe-backend/internal/usecase"
	"go-swipe-backend/pkg/auth"
	"go-swipe-backend/pkg/database"
	"go-swipe-backend/pkg/logger"
	"go-swipe-backend/pkg/redis"
	"go-swipe-backend/pkg/security"
)

// @title           Swipe Matching API
// @version         1.0
// @description     Swipe-based job matching between candidates and recruiters, with per-match chat.
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

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting swipe backend", "port", cfg.Port, "env", cfg.Environment)
	secLogger := security.InitSecurityLogger("go-swipe-backend", cfg.Environment)
	defer func() { _ = secLogger.Sync() }()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(rootCtx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		applied, err := migration.Runner{}.Run(rootCtx, dbPool)
		if err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Migrations applied", "count", applied)
	}

	// 4. Setup Redis (optional)
	var redisHealth func(ctx context.Context) error
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, falling back to in-process rate limiting and fan-out", "error", err)
	} else {
		redisHealth = redis.HealthCheck
		defer func() { _ = redis.Close() }()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobOfferRepo := postgres.NewJobOfferRepository(dbPool)
	swipeRepo := postgres.NewSwipeRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)

	// 6. Setup Realtime
	hub := realtime.NewHub()
	broadcaster := realtime.NewBroadcaster(hub, redis.Client())
	go broadcaster.Run(rootCtx)

	// 7. Setup UseCases
	userUC := usecase.NewUserUsecase(userRepo)
	matchUC := usecase.NewMatchUsecase(matchRepo)
	detector := usecase.NewMatchDetector(jobOfferRepo, swipeRepo, matchUC)
	swipeUC := usecase.NewSwipeUsecase(userRepo, jobOfferRepo, swipeRepo, detector)
	messageUC := usecase.NewMessageUsecase(matchRepo, messageRepo, broadcaster)
	healthUC := usecase.NewHealthUsecase(dbPool, redisHealth)

	// 8. Setup Auth
	verifier := auth.NewVerifier(cfg.JWTSecret)
	wsHandler := realtime.NewHandler(hub, verifier, userUC, matchUC, cfg.AllowedOrigins)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:    userUC,
		SwipeUC:   swipeUC,
		MatchUC:   matchUC,
		MessageUC: messageUC,
		HealthUC:  healthUC,
		Verifier:  verifier,
		Realtime:  wsHandler,
		Config:    cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
