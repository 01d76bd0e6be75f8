package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Name() string { return "debug" }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar counters, including the "medlink" map
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
