package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"internmatch/docs"
	"internmatch/internal/auth"
	"internmatch/internal/cache"
	"internmatch/internal/config"
	"internmatch/internal/db"
	"internmatch/internal/handler"
	"internmatch/internal/logger"
	"internmatch/internal/ranker"
	"internmatch/internal/repository"
	"internmatch/internal/router"
	"internmatch/internal/service"
	"internmatch/internal/snapshot"
)

// @title InternMatch API
// @version 1.0
// @description Student internship matching: profiles, an admin-curated catalog, AI recommendations and an application tracker.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the auth token returned at signup or login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database init")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if cacheClient != nil {
		if err := cacheClient.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, continuing without cache")
		}
		defer cacheClient.Close()
	}

	snapshots, err := snapshot.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SnapshotBackend).Msg("snapshot store init")
	}

	if cfg.LLMAPIKey == "" {
		log.Warn().Msg("LLM_API_KEY is not set, recommendations will fail")
	}
	rk := ranker.NewOpenAIRanker(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	internshipRepo := repository.NewInternshipRepository(gormDB)
	trackerRepo := repository.NewTrackerRepository(gormDB)

	identities := auth.NewIdentityStore(cacheClient, cfg.IdentityCacheTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, adminRepo, identities, snapshots, cfg.BcryptCost)
	catalogService := service.NewCatalogService(internshipRepo)
	trackerService := service.NewTrackerService(trackerRepo)
	recommendationService := service.NewRecommendationService(
		userRepo,
		internshipRepo,
		rk,
		cacheClient,
		cfg.RecommendationCacheTTL,
		cfg.LLMTimeout,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(
		e,
		cfg,
		authService,
		handler.NewAuthHandler(authService),
		handler.NewProfileHandler(authService),
		handler.NewInternshipHandler(catalogService),
		handler.NewTrackerHandler(trackerService),
		handler.NewRecommendationHandler(recommendationService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
