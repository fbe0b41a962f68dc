package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ifa360/ifa360-server/internal/container"
	handlers "github.com/ifa360/ifa360-server/internal/interface/http"
	"github.com/ifa360/ifa360-server/internal/interface/middleware"
)

// ProjectionModule wires the savings projection endpoint.
// Public: POST /api/projection (the projection page itself sits behind
// the gate; the math endpoint is read-only and merely throttled).
type ProjectionModule struct {
	Handler *handlers.ProjectionHandler
}

func NewProjectionModule(h *handlers.ProjectionHandler) *ProjectionModule {
	return &ProjectionModule{Handler: h}
}

func (m *ProjectionModule) Routes(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/projection", limiter, m.Handler.Simulate)
}
