package router

import "github.com/gin-gonic/gin"

// Module is a feature area (access gate, projection, leads) that mounts its
// own routes on the shared API group.
type Module interface {
	Routes(rg *gin.RouterGroup)
}

// Registry collects feature modules and mounts them under /api once the
// engine-level middleware chain is in place.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use queues middleware that applies to every API route but not to the
// engine-level chain (so the page gate stays outside it).
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

func (r *Registry) MountAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Routes(r.API)
	}
}
