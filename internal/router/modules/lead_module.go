package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ifa360/ifa360-server/internal/container"
	handlers "github.com/ifa360/ifa360-server/internal/interface/http"
	"github.com/ifa360/ifa360-server/internal/interface/middleware"
	"github.com/ifa360/ifa360-server/pkg/helpers"
)

// LeadModule wires lead capture and listing.
// Public: POST /api/leads
// Protected: GET /api/leads (session required)
type LeadModule struct {
	Handler  *handlers.LeadHandler
	Sessions *helpers.SessionManager
	Cookies  *helpers.Manager
}

func NewLeadModule(h *handlers.LeadHandler, sessions *helpers.SessionManager, cookies *helpers.Manager) *LeadModule {
	return &LeadModule{Handler: h, Sessions: sessions, Cookies: cookies}
}

func (m *LeadModule) Routes(rg *gin.RouterGroup) {
	captureLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/leads", captureLimiter, m.Handler.Create)

	auth := rg.Group("/")
	auth.Use(middleware.RequireSession(m.Sessions, m.Cookies))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.GET("/leads", m.Handler.List)
	}
}
