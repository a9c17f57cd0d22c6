package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"celestialguide/internal/commentary"
	"celestialguide/internal/ephem"
	"celestialguide/internal/natal"
	"celestialguide/internal/types"
)

const birthTimeLayout = "2006-01-02 15:04:05"

// NatalChartRequest describes a birth moment and place.
type NatalChartRequest struct {
	Datetime    string  `json:"datetime" binding:"required" example:"1990-06-15 14:30:00"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
	Timezone    string  `json:"timezone" example:"Europe/Istanbul"`
	HouseSystem string  `json:"houseSystem" example:"Placidus"`
}

func (r *NatalChartRequest) applyDefaults() {
	if r.Timezone == "" {
		r.Timezone = "UTC"
	}
	if r.HouseSystem == "" {
		r.HouseSystem = string(ephem.Placidus)
	}
}

// ChartPoint is a zodiac position with a display string.
type ChartPoint struct {
	types.ZodiacPosition
	Formatted string `json:"formatted"`
}

// HouseCuspView is a house cusp with a display string.
type HouseCuspView struct {
	types.HouseCusp
	Formatted string `json:"formatted"`
}

// PlanetView is a planet placement with a display string.
type PlanetView struct {
	types.PlanetPosition
	Formatted string `json:"formatted"`
}

// BirthInfoView echoes the interpreted request back to the caller.
type BirthInfoView struct {
	Datetime    string  `json:"datetime"`
	Timezone    string  `json:"timezone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	HouseSystem string  `json:"houseSystem"`
}

// NatalChartResponse is the full computed chart.
type NatalChartResponse struct {
	Ascendant ChartPoint      `json:"ascendant"`
	Midheaven ChartPoint      `json:"midheaven"`
	Houses    []HouseCuspView `json:"houses"`
	Planets   []PlanetView    `json:"planets"`
	Aspects   []types.Aspect  `json:"aspects"`
	BirthInfo BirthInfoView   `json:"birthInfo"`
}

// TransitDatesResponse lists significant transit events in a date range.
type TransitDatesResponse struct {
	Events []natal.TransitEvent `json:"events"`
}

// HouseSystemsResponse lists the supported house calculation methods.
type HouseSystemsResponse struct {
	HouseSystems []ephem.HouseSystem `json:"houseSystems"`
	Default      string              `json:"default"`
}

// ZodiacSignsResponse lists the twelve signs in zodiac order.
type ZodiacSignsResponse struct {
	Signs []string `json:"signs"`
}

// PlanetsResponse lists the chart points in calculation order.
type PlanetsResponse struct {
	Planets []string `json:"planets"`
}

func formatZodiac(pos types.ZodiacPosition) string {
	return fmt.Sprintf("%.2f° %s", pos.DegreeInSign, pos.Sign)
}

func newNatalChartResponse(chart types.NatalChart, req NatalChartRequest) NatalChartResponse {
	resp := NatalChartResponse{
		Ascendant: ChartPoint{chart.Ascendant, formatZodiac(chart.Ascendant)},
		Midheaven: ChartPoint{chart.Midheaven, formatZodiac(chart.Midheaven)},
		Houses:    make([]HouseCuspView, 0, len(chart.Houses)),
		Planets:   make([]PlanetView, 0, len(chart.Planets)),
		Aspects:   chart.Aspects,
		BirthInfo: BirthInfoView{
			Datetime:    req.Datetime,
			Timezone:    req.Timezone,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			HouseSystem: req.HouseSystem,
		},
	}
	for _, cusp := range chart.Houses {
		resp.Houses = append(resp.Houses, HouseCuspView{cusp, formatZodiac(cusp.ZodiacPosition)})
	}
	for _, planet := range chart.Planets {
		resp.Planets = append(resp.Planets, PlanetView{planet, formatZodiac(planet.ZodiacPosition)})
	}
	return resp
}

// computeChart parses and validates a natal chart request and runs the
// calculation. Validation failures come back with ok=false after the
// response has been written.
func (app *App) computeChart(c *gin.Context) (types.NatalChart, NatalChartRequest, bool) {
	var req NatalChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return types.NatalChart{}, req, false
	}
	req.applyDefaults()

	local, err := time.Parse(birthTimeLayout, req.Datetime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid datetime, expected YYYY-MM-DD HH:MM:SS"})
		return types.NatalChart{}, req, false
	}

	system, err := ephem.ParseHouseSystem(req.HouseSystem)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("unknown house system %q, options: %v", req.HouseSystem, ephem.HouseSystems()),
		})
		return types.NatalChart{}, req, false
	}

	chart, err := app.natal.Chart(local, req.Timezone, req.Latitude, req.Longitude, system)
	if err != nil {
		if errors.Is(err, natal.ErrInvalidTimezone) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return types.NatalChart{}, req, false
		}
		app.logger.Error("natal chart calculation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "chart calculation failed"})
		return types.NatalChart{}, req, false
	}
	return chart, req, true
}

// handleNatalChart godoc
// @Summary Calculate a natal chart
// @Description Compute planet placements, house cusps and aspects for a birth moment
// @Tags astrology
// @Accept json
// @Produce json
// @Param request body NatalChartRequest true "Birth data"
// @Success 200 {object} NatalChartResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/astrology/natal-chart [post]
func (app *App) handleNatalChart(c *gin.Context) {
	chart, req, ok := app.computeChart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newNatalChartResponse(chart, req))
}

// handleTransitDates godoc
// @Summary List transit events
// @Description Scan a date range for retrograde stations, eclipses and lunations
// @Tags astrology
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} TransitDatesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/astrology/transit-dates [get]
func (app *App) handleTransitDates(c *gin.Context) {
	var req struct {
		StartDate string `form:"startDate" binding:"required"`
		EndDate   string `form:"endDate" binding:"required"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid startDate, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid endDate, expected YYYY-MM-DD"})
		return
	}
	if !start.Before(end) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "startDate must be before endDate"})
		return
	}

	events, err := app.natal.TransitEvents(start, end)
	if err != nil {
		app.logger.Error("transit scan failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "transit scan failed"})
		return
	}
	c.JSON(http.StatusOK, TransitDatesResponse{Events: events})
}

// handleHouseSystems godoc
// @Summary List house systems
// @Tags astrology
// @Produce json
// @Success 200 {object} HouseSystemsResponse
// @Router /api/astrology/house-systems [get]
func (app *App) handleHouseSystems(c *gin.Context) {
	c.JSON(http.StatusOK, HouseSystemsResponse{
		HouseSystems: ephem.HouseSystems(),
		Default:      string(ephem.Placidus),
	})
}

// handleZodiacSigns godoc
// @Summary List zodiac signs
// @Tags astrology
// @Produce json
// @Success 200 {object} ZodiacSignsResponse
// @Router /api/astrology/zodiac-signs [get]
func (app *App) handleZodiacSigns(c *gin.Context) {
	c.JSON(http.StatusOK, ZodiacSignsResponse{Signs: natal.Signs()})
}

// handlePlanets godoc
// @Summary List chart points
// @Tags astrology
// @Produce json
// @Success 200 {object} PlanetsResponse
// @Router /api/astrology/planets [get]
func (app *App) handlePlanets(c *gin.Context) {
	c.JSON(http.StatusOK, PlanetsResponse{Planets: natal.Bodies()})
}

// handleDeepCommentary godoc
// @Summary Generate chart commentary
// @Description Calculate the natal chart and generate a structured interpretation
// @Tags astrology
// @Accept json
// @Produce json
// @Param request body NatalChartRequest true "Birth data"
// @Success 200 {object} commentary.Result
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/astrology/commentary/deep [post]
func (app *App) handleDeepCommentary(c *gin.Context) {
	chart, req, ok := app.computeChart(c)
	if !ok {
		return
	}

	result, err := app.commentary.Deep(chart, commentary.BirthInfo{
		Datetime:    req.Datetime,
		Timezone:    req.Timezone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		HouseSystem: req.HouseSystem,
	})
	if err != nil {
		app.logger.Error("commentary generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "commentary generation failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}
