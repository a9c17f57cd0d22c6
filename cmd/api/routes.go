package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"celestialguide/internal/metrics"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	app.router.GET("/", app.handleRoot)
	app.router.GET("/health", app.handleHealth)
	app.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Star search
	app.router.POST("/api/star/search", app.handleStarSearch)
	app.router.GET("/api/star/catalog/search", app.handleCatalogSearch)

	// Sky maps
	app.router.POST("/api/map/generate", app.handleGenerateMap)
	app.router.POST("/api/map/download", app.handleDownloadMap)

	// Astrology
	app.router.POST("/api/astrology/natal-chart", app.handleNatalChart)
	app.router.GET("/api/astrology/transit-dates", app.handleTransitDates)
	app.router.GET("/api/astrology/house-systems", app.handleHouseSystems)
	app.router.GET("/api/astrology/zodiac-signs", app.handleZodiacSigns)
	app.router.GET("/api/astrology/planets", app.handlePlanets)
	app.router.POST("/api/astrology/commentary/deep", app.handleDeepCommentary)

	// Solar and lunar events
	app.router.POST("/api/solar-events/calculate", app.handleSolarEvents)

	// Astrophotography
	app.router.POST("/api/astrophotography/calculate", app.handleAstrophotoCalculate)
	app.router.GET("/api/astrophotography/targets", app.handleAstrophotoTargets)

	// Environment
	app.router.POST("/api/environment/geocode", app.handleGeocode)
	app.router.GET("/api/environment/weather", app.handleWeather)
	app.router.GET("/api/environment/light-pollution", app.handleLightPollution)
	app.router.GET("/api/environment/complete", app.handleCompleteEnvironment)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
