package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ifa360/ifa360-server/pkg/helpers"
	"github.com/ifa360/ifa360-server/pkg/response"
)

// RequireSession validates the session cookie on API routes. Unlike the
// page-level Gate it answers 401 JSON instead of redirecting, so browser
// fetch calls can react to it.
func RequireSession(sessions *helpers.SessionManager, cookies *helpers.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessions.Verify(cookies.Read(c))
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "not authenticated", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(CtxSessionNameKey, claims.Name)
		c.Set(CtxSessionEmailKey, claims.Email)
		c.Next()
	}
}
