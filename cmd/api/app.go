package main

import (
	"context"
	"log/slog"

	"unlocode/internal/cache"
	"unlocode/internal/config"
	"unlocode/internal/dataset"
	"unlocode/internal/query"
	"unlocode/internal/types"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	queryService query.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Wire the query path: per-country files -> TTL cache -> query service
	store := dataset.NewStore(cfg.Data.OutputDir, logger)
	loader := func(_ context.Context, country string) ([]*types.Record, error) {
		return store.Load(country)
	}
	datasets := cache.New(cfg.Cache.TTL, loader, logger)

	app := &App{
		router:       router,
		logger:       logger,
		queryService: query.NewService(datasets, logger),
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
