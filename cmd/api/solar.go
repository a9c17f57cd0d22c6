package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"celestialguide/internal/solar"
)

// SolarEventsRequest selects a location and date range for the almanac.
type SolarEventsRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	StartDate string  `json:"startDate" binding:"required" example:"2024-06-01"`
	Days      int     `json:"days" binding:"omitempty,min=1,max=30"`
}

// SolarEventsResponse is one almanac day per requested date.
type SolarEventsResponse struct {
	Events   []solar.DayEvents `json:"events"`
	Location LocationInfo      `json:"location"`
}

// LocationInfo echoes the coordinates the almanac was computed for.
type LocationInfo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Formatted string  `json:"formatted"`
}

// handleSolarEvents godoc
// @Summary Calculate solar and lunar events
// @Description Sunrise, sunset, twilight, golden hour and moon data for a run of days
// @Tags solar
// @Accept json
// @Produce json
// @Param request body SolarEventsRequest true "Location and date range"
// @Success 200 {object} SolarEventsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/solar-events/calculate [post]
func (app *App) handleSolarEvents(c *gin.Context) {
	var req SolarEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Days == 0 {
		req.Days = 7
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid startDate, expected YYYY-MM-DD"})
		return
	}

	events := app.solar.Events(req.Latitude, req.Longitude, start, req.Days)
	c.JSON(http.StatusOK, SolarEventsResponse{
		Events: events,
		Location: LocationInfo{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Formatted: fmt.Sprintf("%.4f°, %.4f°", req.Latitude, req.Longitude),
		},
	})
}
