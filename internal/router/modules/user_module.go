package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/medlink-api/internal/interface/http"
	"github.com/oksasatya/medlink-api/internal/interface/middleware"
)

// UserModule wires the bearer-protected profile routes under /api/user.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  middleware.TokenVerifier
}

func NewUserModule(h *handlers.UserHandler, tokens middleware.TokenVerifier) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Name() string { return "user" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(middleware.Auth(m.Tokens))
	{
		user.GET("/dashboard", m.Handler.Dashboard)
		user.PUT("/edit/:userId", m.Handler.Edit)
		user.PUT("/password", m.Handler.ChangePassword)
		// Directory search via Elasticsearch
		user.GET("/search", m.Handler.Search)
	}
}
