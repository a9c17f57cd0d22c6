package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"celestialguide/internal/astrophoto"
)

// AstrophotoRequest asks for an imaging plan for one target and night.
type AstrophotoRequest struct {
	Target      string  `json:"target" binding:"required" example:"M31"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
	Date        string  `json:"date" binding:"required" example:"2024-10-01"`
	MinAltitude float64 `json:"minAltitude" binding:"omitempty,min=0,max=90"`
}

// TargetsResponse lists the built-in imaging catalog.
type TargetsResponse struct {
	Targets []astrophoto.Target `json:"targets"`
}

// handleAstrophotoCalculate godoc
// @Summary Plan an imaging session
// @Description Score a target across one astronomical night and pick the best moment
// @Tags astrophotography
// @Accept json
// @Produce json
// @Param request body AstrophotoRequest true "Target and night"
// @Success 200 {object} astrophoto.Plan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/astrophotography/calculate [post]
func (app *App) handleAstrophotoCalculate(c *gin.Context) {
	var req AstrophotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.MinAltitude == 0 {
		req.MinAltitude = astrophoto.DefaultMinAltitude
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	plan, err := app.astrophoto.Plan(req.Target, req.Latitude, req.Longitude, date, req.MinAltitude)
	if err != nil {
		if errors.Is(err, astrophoto.ErrTargetNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "target not found, list available targets at /api/astrophotography/targets",
			})
			return
		}
		app.logger.Error("imaging plan failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "imaging plan failed"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// handleAstrophotoTargets godoc
// @Summary List imaging targets
// @Tags astrophotography
// @Produce json
// @Success 200 {object} TargetsResponse
// @Router /api/astrophotography/targets [get]
func (app *App) handleAstrophotoTargets(c *gin.Context) {
	c.JSON(http.StatusOK, TargetsResponse{Targets: app.astrophoto.Targets()})
}
