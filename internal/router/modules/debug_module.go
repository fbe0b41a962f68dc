package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ifa360/ifa360-server/internal/container"
	"github.com/ifa360/ifa360-server/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Routes(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP;
	// private/loopback callers bypass the limiter
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
