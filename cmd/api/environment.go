package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"celestialguide/internal/environment"
)

// GeocodeRequest is a free-form place lookup.
type GeocodeRequest struct {
	City    string `json:"city" binding:"required" example:"Istanbul"`
	Country string `json:"country" example:"Turkey"`
}

// CoordinatesQuery binds the shared latitude and longitude query
// parameters of the environment endpoints.
type CoordinatesQuery struct {
	Latitude  float64 `form:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `form:"longitude" binding:"min=-180,max=180"`
}

// handleGeocode godoc
// @Summary Geocode a place name
// @Tags environment
// @Accept json
// @Produce json
// @Param request body GeocodeRequest true "Place query"
// @Success 200 {object} types.Place
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/environment/geocode [post]
func (app *App) handleGeocode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	place, err := app.environment.Geocode(req.City, req.Country)
	if err != nil {
		switch {
		case errors.Is(err, environment.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, environment.ErrMissingAPIKey):
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		default:
			app.logger.Error("geocode failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "geocoding failed"})
		}
		return
	}
	c.JSON(http.StatusOK, place)
}

// handleWeather godoc
// @Summary Current weather for a site
// @Tags environment
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {object} types.Weather
// @Failure 400 {object} ErrorResponse
// @Router /api/environment/weather [get]
func (app *App) handleWeather(c *gin.Context) {
	var q CoordinatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	weather, err := app.environment.Weather(q.Latitude, q.Longitude)
	if err != nil {
		if errors.Is(err, environment.ErrMissingAPIKey) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		app.logger.Error("weather lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "weather lookup failed"})
		return
	}
	c.JSON(http.StatusOK, weather)
}

// handleLightPollution godoc
// @Summary Sky darkness for a site
// @Description Bortle class and sky brightness, with a conservative default when no data is available
// @Tags environment
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {object} types.SkyQuality
// @Failure 400 {object} ErrorResponse
// @Router /api/environment/light-pollution [get]
func (app *App) handleLightPollution(c *gin.Context) {
	var q CoordinatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.environment.LightPollution(q.Latitude, q.Longitude))
}

// handleCompleteEnvironment godoc
// @Summary Full site assessment
// @Description Weather and light pollution fetched in parallel, combined into an observation quality score
// @Tags environment
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param city query string false "Display name for the site"
// @Success 200 {object} environment.Report
// @Failure 400 {object} ErrorResponse
// @Router /api/environment/complete [get]
func (app *App) handleCompleteEnvironment(c *gin.Context) {
	var q struct {
		CoordinatesQuery
		City string `form:"city"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := app.environment.Complete(q.Latitude, q.Longitude, q.City)
	if err != nil {
		if errors.Is(err, environment.ErrMissingAPIKey) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		app.logger.Error("environment assessment failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "environment assessment failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}
