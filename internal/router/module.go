package router

import "github.com/gin-gonic/gin"

// Module groups the routes of one feature. Name is used in startup logs.
type Module interface {
	Name() string
	Register(rg *gin.RouterGroup)
}
