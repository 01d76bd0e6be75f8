package router

import (
	"github.com/oksasatya/medlink-api/internal/container"
	handlers "github.com/oksasatya/medlink-api/internal/interface/http"
	"github.com/oksasatya/medlink-api/internal/router/modules"
)

func buildHealth(c *container.Container) *handlers.HealthHandler {
	h := &handlers.HealthHandler{
		Required: map[string]handlers.Check{"postgres": c.PingDB},
		Optional: map[string]handlers.Check{},
	}
	if c.Redis != nil {
		h.Optional["redis"] = c.PingRedis
	}
	if c.ES != nil {
		h.Optional["elasticsearch"] = c.PingES
	}
	return h
}

// InitModules builds the handlers from c and registers every module.
// Call once during startup.
func InitModules(r *Registry, c *container.Container) {
	authHandler := handlers.NewAuthHandler(c.Auth, c.Logger)
	userHandler := handlers.NewUserHandler(c.Profiles, c.Logger)

	r.Add(modules.NewHealthModule(buildHealth(c)))
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, c.JWT))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
