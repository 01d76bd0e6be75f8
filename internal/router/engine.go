package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/medlink-api/internal/container"
	"github.com/oksasatya/medlink-api/internal/interface/middleware"
	"github.com/oksasatya/medlink-api/pkg/validation"
)

// NewEngine returns a Gin engine with global middleware and all routes.
func NewEngine(c *container.Container) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(middleware.Recovery(c.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     c.Config.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	reg := NewRegistry(r, c.Logger)
	if c.Config.HTTPLogEnabled {
		reg.Use(middleware.AccessLog(c.Logger))
	}
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}
