package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movie-search-service/internal/auth"
	"movie-search-service/internal/catalog"
	"movie-search-service/internal/config"
	"movie-search-service/internal/database"
	"movie-search-service/internal/favorites"
	"movie-search-service/internal/ghibli"
	"movie-search-service/internal/handler"
	"movie-search-service/internal/middleware"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to Redis (non-fatal if unavailable; favorites then live
	// in memory only and rate limiting is disabled)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without persistent storage", "error", err)
	}

	var kv favorites.KV
	var prefKV handler.PreferenceKV
	if rdb != nil {
		redisKV := database.NewKV(rdb)
		kv = redisKV
		prefKV = redisKV
	}

	// Initialize film API client and catalog
	client := ghibli.NewClient(cfg.Ghibli.BaseURL)
	cache := catalog.NewCache(client)
	engine := catalog.NewEngine(cache)

	// Initialize favorites store and identity provider
	store := favorites.NewStore(context.Background(), kv)
	provider := auth.NewProvider(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	// Initialize handlers
	movieHandler := handler.NewMovieHandler(engine, client, cfg.Search.DefaultPageSize)
	favoritesHandler := handler.NewFavoritesHandler(store)
	authHandler := handler.NewAuthHandler(provider)
	prefHandler := handler.NewPreferenceHandler(prefKV)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Movie Search Service",
		ServerHeader: "Movie-Search-Service",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	rateLimiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
	app.Use(rateLimiter.Handler())

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", movieHandler.Health)
	api.Get("/movies", movieHandler.Search)
	api.Get("/movies/:id", movieHandler.Detail)

	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", middleware.RequireUser(provider), authHandler.Logout)
	api.Get("/auth/me", middleware.RequireUser(provider), authHandler.Me)

	fav := api.Group("/favorites", middleware.RequireUser(provider))
	fav.Get("/", favoritesHandler.List)
	fav.Post("/", favoritesHandler.Add)
	fav.Delete("/:id", favoritesHandler.Remove)

	api.Get("/preferences/theme", prefHandler.GetTheme)
	api.Put("/preferences/theme", prefHandler.SetTheme)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down movie search service...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting movie search service", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
