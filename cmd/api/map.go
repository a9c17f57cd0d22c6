package main

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"celestialguide/internal/starmap"
)

// StarMapRequest renders a sky chart for an observer
type StarMapRequest struct {
	Latitude           float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude          float64  `json:"longitude" binding:"min=-180,max=180"`
	Elevation          float64  `json:"elevation" binding:"min=0"`
	DatetimeUTC        string   `json:"datetimeUtc" example:"2024-03-01T22:00:00Z"`
	ShowConstellations *bool    `json:"showConstellations"`
	ShowLabels         *bool    `json:"showLabels"`
	FOVCenterRA        *float64 `json:"fovCenterRa"`  // degrees
	FOVCenterDec       *float64 `json:"fovCenterDec"` // degrees
	FOVRadius          *float64 `json:"fovRadius"`    // degrees
}

func (r StarMapRequest) options() starmap.Options {
	// Both layers default on.
	opts := starmap.Options{ShowConstellations: true, ShowLabels: true}
	if r.ShowConstellations != nil {
		opts.ShowConstellations = *r.ShowConstellations
	}
	if r.ShowLabels != nil {
		opts.ShowLabels = *r.ShowLabels
	}
	if r.FOVCenterRA != nil && r.FOVCenterDec != nil && r.FOVRadius != nil {
		opts.FOV = &starmap.FOV{
			RAHours:    *r.FOVCenterRA / 15,
			DecDegrees: *r.FOVCenterDec,
			RadiusDeg:  *r.FOVRadius,
		}
	}
	return opts
}

// handleGenerateMap godoc
// @Summary Generate a sky map
// @Description Render the visible sky as a base64 PNG with star and planet placement
// @Tags map
// @Accept json
// @Produce json
// @Param request body StarMapRequest true "Map parameters"
// @Success 200 {object} starmap.Chart
// @Failure 400 {object} ErrorResponse
// @Router /api/map/generate [post]
func (app *App) handleGenerateMap(c *gin.Context) {
	var req StarMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	obs, err := parseObserver(req.Latitude, req.Longitude, req.Elevation, req.DatetimeUTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	chart, err := app.starmap.Render(obs, req.options())
	if err != nil {
		app.logger.Error("map render failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "map generation failed"})
		return
	}
	c.JSON(http.StatusOK, chart)
}

// handleDownloadMap godoc
// @Summary Download a sky map
// @Description Render the sky chart and return it as a PNG attachment
// @Tags map
// @Accept json
// @Produce png
// @Param request body StarMapRequest true "Map parameters"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Router /api/map/download [post]
func (app *App) handleDownloadMap(c *gin.Context) {
	var req StarMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	obs, err := parseObserver(req.Latitude, req.Longitude, req.Elevation, req.DatetimeUTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	chart, err := app.starmap.Render(obs, req.options())
	if err != nil {
		app.logger.Error("map render failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "map generation failed"})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(chart.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "map encoding failed"})
		return
	}

	filename := fmt.Sprintf("star_map_%g_%g.png", req.Latitude, req.Longitude)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "image/png", raw)
}
