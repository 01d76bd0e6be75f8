package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/medlink-api/internal/interface/http"
)

// AuthModule registers the public account routes:
// POST /api/auth/signup, POST /api/auth/signin
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.Signup)
	rg.POST("/auth/signin", m.Handler.Signin)
}
