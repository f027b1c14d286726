package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	checks map[string]HealthCheck
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		checks: checks,
	}
}

// Check handles GET /health requests. A failing dependency degrades the
// status but the endpoint still answers 200 so liveness probes pass.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(h.checks)),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			response.Dependencies[name] = "disconnected"
			response.Status = "degraded"
			continue
		}
		response.Dependencies[name] = "connected"
	}

	c.JSON(http.StatusOK, response)
}
