package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootResponse describes the running service
type RootResponse struct {
	Service string `json:"service" example:"celestialguide"`
	Version string `json:"version" example:"1.0"`
	Docs    string `json:"docs" example:"/swagger/index.html"`
}

// HealthResponse reports service and catalog state
type HealthResponse struct {
	Status        string `json:"status" example:"healthy"`
	CatalogLoaded bool   `json:"catalogLoaded"`
}

// ErrorResponse carries an error message
type ErrorResponse struct {
	Error string `json:"error" example:"star 'Foo' not found"`
}

// handleRoot godoc
// @Summary Service info
// @Description Identify the API and point at the docs
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (app *App) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Service: "celestialguide",
		Version: "1.0",
		Docs:    "/swagger/index.html",
	})
}

// handleHealth godoc
// @Summary Health check
// @Description Check if the API is running and the star catalog is loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	loaded, err := app.store.Loaded()
	if err != nil {
		app.logger.Warn("catalog check failed", "error", err)
	}

	status := "healthy"
	if !loaded {
		status = "degraded"
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:        status,
		CatalogLoaded: loaded,
	})
}
