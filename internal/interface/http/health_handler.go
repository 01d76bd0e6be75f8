package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/medlink-api/pkg/response"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

// HealthHandler reports the state of the primary store and optional services.
// Only a failing required check makes the endpoint unhealthy.
type HealthHandler struct {
	Required map[string]Check
	Optional map[string]Check
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}
	for name, check := range h.Required {
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = "down"
			continue
		}
		checks[name] = "up"
	}
	for name, check := range h.Optional {
		if err := check(ctx); err != nil {
			checks[name] = "degraded"
			continue
		}
		checks[name] = "up"
	}

	if status != http.StatusOK {
		response.JSON(c, response.Error[any](status, "unhealthy", gin.H{"checks": checks}))
		return
	}
	response.JSON(c, response.Success(status, gin.H{"checks": checks}, "ok", nil))
}
