package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ifa360/ifa360-server/internal/container"
	handlers "github.com/ifa360/ifa360-server/internal/interface/http"
	"github.com/ifa360/ifa360-server/internal/interface/middleware"
)

// AccessModule wires the access-code gate endpoints.
// Public: POST /api/login, POST /api/logout, GET /api/session
type AccessModule struct {
	Handler *handlers.AuthHandler
}

func NewAccessModule(h *handlers.AuthHandler) *AccessModule {
	return &AccessModule{Handler: h}
}

func (m *AccessModule) Routes(rg *gin.RouterGroup) {
	// The shared access code has no lockout, so the login endpoint is
	// throttled per IP to bound guessing.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	sessionLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)
	rg.GET("/session", sessionLimiter, m.Handler.Session)
}
