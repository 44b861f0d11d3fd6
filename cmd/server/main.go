package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/config"
	"github.com/mertozler/movie-watchlist/internal/database"
	"github.com/mertozler/movie-watchlist/internal/gateway/suggest"
	"github.com/mertozler/movie-watchlist/internal/handler"
	"github.com/mertozler/movie-watchlist/internal/middleware"
	"github.com/mertozler/movie-watchlist/internal/queue"
	"github.com/mertozler/movie-watchlist/internal/repository"
	"github.com/mertozler/movie-watchlist/internal/router"
	"github.com/mertozler/movie-watchlist/internal/scheduler"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "dev" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional: without it the cache is off and rate limiting
	// falls back to an in-process limiter.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable; response cache disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	invalidator := middleware.NewInvalidator(cacheCfg, rdb)

	userRepo := repository.NewUserRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	watchlistRepo := repository.NewWatchlistRepo(db)

	suggestClient := suggest.New(cfg.SuggestURL, cfg.SuggestKey)

	movieHandler := handler.NewMovieHandler(movieRepo, invalidator, logger)
	genreHandler := handler.NewGenreHandler(genreRepo, suggestClient, invalidator, logger)
	userHandler := handler.NewUserHandler(userRepo, invalidator, logger)
	watchlistHandler := handler.NewWatchlistHandler(watchlistRepo, movieRepo, invalidator, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS()) // the SPA is served from another origin
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(cacheCfg, rdb))

	router.Register(e, movieHandler, genreHandler, userHandler, watchlistHandler)

	go func() {
		if err := queue.StartEmailConsumer(logger); err != nil {
			logger.Error("email consumer stopped", zap.Error(err))
		}
	}()
	go scheduler.NewReminder(userRepo, movieRepo, logger).Start(cfg.ReminderHours)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
