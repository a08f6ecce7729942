package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/briefing-team/briefing-analyzer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	briefingHandler *Briefing
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, briefingHandler *Briefing) *Router {
	return &Router{
		cfg:             cfg,
		briefingHandler: briefingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupBriefingRoutes(v1)
}

// setupBriefingRoutes configures briefing analysis routes
func (rt *Router) setupBriefingRoutes(g *echo.Group) {
	briefingGroup := g.Group("/briefings")

	briefingGroup.POST("/analyze", rt.briefingHandler.Analyze)
	briefingGroup.POST("/validate", rt.briefingHandler.Validate)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
