package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"celestialguide/internal/catalog"
	"celestialguide/internal/types"
)

// StarSearchRequest locates a star for an observer
type StarSearchRequest struct {
	Query       string  `json:"query" binding:"required" example:"Sirius"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
	Elevation   float64 `json:"elevation" binding:"min=0"`
	DatetimeUTC string  `json:"datetimeUtc" example:"2024-03-01T22:00:00Z"`
}

// StarSearchResponse is the located star with a readable summary
type StarSearchResponse struct {
	Name            string  `json:"name"`
	HipID           int     `json:"hipId,omitempty"`
	RA              float64 `json:"ra"`  // degrees
	Dec             float64 `json:"dec"` // degrees
	Altitude        float64 `json:"altitude"`
	Azimuth         float64 `json:"azimuth"`
	Magnitude       float64 `json:"magnitude"`
	Visible         bool    `json:"visible"`
	DistanceParsecs float64 `json:"distanceParsecs,omitempty"`
	Description     string  `json:"description"`
}

// CatalogMatch is one autocomplete result
type CatalogMatch struct {
	Name      string  `json:"name"`
	HipID     int     `json:"hipId"`
	Magnitude float64 `json:"magnitude"`
}

// CatalogSearchResponse lists autocomplete matches
type CatalogSearchResponse struct {
	Results []CatalogMatch `json:"results"`
}

// parseObserver builds an observer from request fields, defaulting the
// instant to now.
func parseObserver(lat, lon, elevation float64, datetimeUTC string) (types.Observer, error) {
	t := time.Now().UTC()
	if datetimeUTC != "" {
		parsed, err := time.Parse(time.RFC3339, datetimeUTC)
		if err != nil {
			return types.Observer{}, fmt.Errorf("invalid datetime format")
		}
		t = parsed
	}
	return types.NewObserver(lat, lon, elevation, t), nil
}

// handleStarSearch godoc
// @Summary Find a star and compute its position
// @Description Search by common name or HIP id and return Alt/Az for the observer
// @Tags star
// @Accept json
// @Produce json
// @Param request body StarSearchRequest true "Search parameters"
// @Success 200 {object} StarSearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/star/search [post]
func (app *App) handleStarSearch(c *gin.Context) {
	var req StarSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	obs, err := parseObserver(req.Latitude, req.Longitude, req.Elevation, req.DatetimeUTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	star, err := app.store.FindStar(req.Query)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("star %q not found", req.Query)})
			return
		}
		app.logger.Error("star lookup failed", "query", req.Query, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "catalog lookup failed"})
		return
	}

	name := star.ProperName
	if name == "" {
		name = fmt.Sprintf("HIP %d", star.HipID)
	}

	pos := app.skyService.Position(types.Target{
		RA:        star.RA,
		Dec:       star.Dec,
		Magnitude: star.Magnitude,
		Name:      name,
		HipID:     star.HipID,
		Parallax:  star.Parallax,
	}, obs)

	c.JSON(http.StatusOK, StarSearchResponse{
		Name:            name,
		HipID:           star.HipID,
		RA:              star.RA * 15,
		Dec:             star.Dec,
		Altitude:        pos.Altitude,
		Azimuth:         pos.Azimuth,
		Magnitude:       star.Magnitude,
		Visible:         pos.Visible,
		DistanceParsecs: pos.DistanceParsecs,
		Description:     describeStar(pos, star.Magnitude),
	})
}

// describeStar writes the human-readable summary line.
func describeStar(pos types.Position, magnitude float64) string {
	visibility := "Visible"
	if !pos.Visible {
		visibility = "Below horizon"
	}

	var quality string
	switch {
	case !pos.Visible:
		quality = "Not visible at this time"
	case pos.Altitude > 60:
		quality = "Excellent viewing - high in the sky"
	case pos.Altitude > 30:
		quality = "Good viewing conditions"
	case pos.Altitude > 15:
		quality = "Fair viewing - relatively low"
	default:
		quality = "Poor viewing - very low on horizon"
	}

	var brightness string
	switch {
	case magnitude < 1.0:
		brightness = "Extremely bright, excellent for beginners"
	case magnitude < 2.0:
		brightness = "Very bright, easily visible"
	case magnitude < 3.0:
		brightness = "Bright, visible in suburban skies"
	case magnitude < 4.0:
		brightness = "Moderate brightness, needs darker skies"
	case magnitude < 5.0:
		brightness = "Faint, requires dark skies"
	default:
		brightness = "Very faint, requires excellent conditions"
	}

	return fmt.Sprintf("%s – Alt: %.1f°, Az: %.1f°, Mag: %.2f. %s. %s.",
		visibility, pos.Altitude, pos.Azimuth, magnitude, quality, brightness)
}

// handleCatalogSearch godoc
// @Summary Autocomplete star names
// @Description Search common star names, brightest first
// @Tags star
// @Produce json
// @Param query query string true "Search query"
// @Param limit query int false "Maximum results (1-100)" default(10)
// @Success 200 {object} CatalogSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/star/catalog/search [get]
func (app *App) handleCatalogSearch(c *gin.Context) {
	var params struct {
		Query string `form:"query" binding:"required"`
		Limit int    `form:"limit,default=10" binding:"min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	matches, err := app.store.SearchNames(params.Query, params.Limit)
	if err != nil {
		app.logger.Error("catalog search failed", "query", params.Query, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "catalog search failed"})
		return
	}

	results := make([]CatalogMatch, len(matches))
	for i, m := range matches {
		results[i] = CatalogMatch{Name: m.CommonName, HipID: m.HipID, Magnitude: m.Magnitude}
	}
	c.JSON(http.StatusOK, CatalogSearchResponse{Results: results})
}
