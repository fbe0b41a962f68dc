package router

import (
	"github.com/ifa360/ifa360-server/internal/application"
	"github.com/ifa360/ifa360-server/internal/container"
	pginfra "github.com/ifa360/ifa360-server/internal/infrastructure/postgres"
	handlers "github.com/ifa360/ifa360-server/internal/interface/http"
	"github.com/ifa360/ifa360-server/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	sessions := container.GetSessions()
	cookies := container.GetCookies()

	authHandler := handlers.NewAuthHandler(cfg, sessions, cookies, logger)
	r.Add(modules.NewAccessModule(authHandler))

	projectionHandler := handlers.NewProjectionHandler(logger)
	r.Add(modules.NewProjectionModule(projectionHandler))

	leadRepo := pginfra.NewLeadRepository(container.GetPGPool())
	leadSvc := application.NewLeadService(leadRepo, container.GetRabbitPub(), logger)
	leadHandler := handlers.NewLeadHandler(leadSvc, logger)
	r.Add(modules.NewLeadModule(leadHandler, sessions, cookies))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
