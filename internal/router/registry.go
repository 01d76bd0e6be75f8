package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/response"
)

// Registry collects modules and mounts them under /api.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	log         logrus.FieldLogger
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine, log logrus.FieldLogger) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api"), log: log}
}

// Use adds middleware applied to every /api route.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts the modules in the order they were added. Unknown routes
// answer with the standard error envelope.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	names := make([]string, 0, len(r.modules))
	for _, m := range r.modules {
		m.Register(r.API)
		names = append(names, m.Name())
	}
	r.Engine.NoRoute(func(c *gin.Context) {
		response.Fail(c, apperror.NotFound("route not found"))
	})
	r.log.WithField("modules", names).Info("routes registered")
}
