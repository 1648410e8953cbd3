package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediaMatcher/app/echo-server/metrics"
	"mediaMatcher/app/echo-server/router"
	"mediaMatcher/business/recommend"
	"mediaMatcher/business/watchlist"
	"mediaMatcher/internal/middleware"
	"mediaMatcher/internal/repository/googlebooks"
	psqlRepo "mediaMatcher/internal/repository/postgres"
	"mediaMatcher/internal/repository/rediscache"
	"mediaMatcher/internal/repository/tmdb"
	"mediaMatcher/internal/rest"
	"mediaMatcher/pkg/config"
	"mediaMatcher/pkg/database"
	redisdb "mediaMatcher/pkg/database/redis"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mediaMatcher/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MediaMatcher", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init catalog clients
	tmdbClient := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, cfg.TMDB.Timeout)
	booksClient := googlebooks.NewClient(cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.APIKey, cfg.GoogleBooks.Timeout)

	var movieCatalog recommend.CatalogRepository = tmdb.NewMovieCatalog(tmdbClient)
	var tvCatalog recommend.CatalogRepository = tmdb.NewTVCatalog(tmdbClient)
	var bookCatalog recommend.CatalogRepository = booksClient

	// Optional redis read-through cache in front of the catalogs
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", "error", err)
		} else {
			movieCatalog = rediscache.NewCatalogCache(movieCatalog, redisClient, "movie", cfg.Redis.CacheTTL)
			tvCatalog = rediscache.NewCatalogCache(tvCatalog, redisClient, "tv", cfg.Redis.CacheTTL)
			bookCatalog = rediscache.NewCatalogCache(bookCatalog, redisClient, "book", cfg.Redis.CacheTTL)
			logger.Info("Catalog cache enabled")
		}
	}

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	watchlistRepo := psqlRepo.NewWatchlistRepository(db)
	historyRepo := psqlRepo.NewRecommendationRepository(db)

	// Init service
	recommendService := recommend.NewService(movieCatalog, tvCatalog, bookCatalog, historyRepo, nil)
	watchlistService := watchlist.NewService(watchlistRepo)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService)
	searchHandler := rest.NewSearchHandler(movieCatalog, tvCatalog, bookCatalog)
	watchlistHandler := rest.NewWatchlistHandler(watchlistService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes; everything under /api/v1 runs with a session user.
	api := e.Group("/api/v1", middleware.SessionMiddleware(userRepo, cfg.JWT.SecretKey, cfg.JWT.SessionTTL))
	router.SetupRecommendationRoutes(api, recommendHandler)
	router.SetupSearchRoutes(api, searchHandler)
	router.SetupWatchlistRoutes(api, watchlistHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
