package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"celestialguide/internal/astrophoto"
	"celestialguide/internal/catalog"
	"celestialguide/internal/commentary"
	"celestialguide/internal/config"
	"celestialguide/internal/environment"
	"celestialguide/internal/ephem"
	"celestialguide/internal/metrics"
	"celestialguide/internal/natal"
	"celestialguide/internal/sky"
	"celestialguide/internal/solar"
	"celestialguide/internal/starmap"

	_ "celestialguide/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router      *gin.Engine
	logger      *slog.Logger
	store       *catalog.Store
	skyService  sky.Service
	natal       natal.Service
	solar       solar.Service
	astrophoto  astrophoto.Service
	starmap     starmap.Service
	environment environment.Service
	commentary  commentary.Service
	cfg         *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())

	store, err := catalog.Open(cfg.App.DatabasePath)
	if err != nil {
		return nil, err
	}

	provider := ephem.NewAnalytic()
	skyService := sky.NewServiceWithProvider(
		logger,
		provider,
		cfg.App.MinAltitude,
		time.Duration(cfg.App.CacheTTLSeconds)*time.Second,
	)

	app := &App{
		router:      router,
		logger:      logger,
		store:       store,
		skyService:  skyService,
		natal:       natal.NewServiceWithProvider(logger, provider),
		solar:       solar.NewServiceWithProvider(logger, provider),
		astrophoto:  astrophoto.NewServiceWithProvider(logger, provider),
		starmap:     starmap.NewService(logger, store, skyService),
		environment: environment.NewService(logger, cfg.App.OpencageAPIKey, cfg.App.OpenweathermapAPIKey),
		commentary:  commentary.NewService(logger, cfg.App.GeminiAPIKey),
		cfg:         cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases held resources.
func (app *App) Close() {
	if err := app.store.Close(); err != nil {
		app.logger.Warn("closing catalog store", "error", err)
	}
}
