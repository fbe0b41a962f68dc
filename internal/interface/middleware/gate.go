package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ifa360/ifa360-server/pkg/helpers"
)

// Context keys set by the gate and by RequireSession on success.
const (
	CtxSessionNameKey  = "sessionName"
	CtxSessionEmailKey = "sessionEmail"
)

// IsProtectedPath reports whether path falls under one of the protected
// prefixes: an exact match, or the prefix followed by "/".
func IsProtectedPath(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Gate enforces the session cookie on protected path prefixes. Requests
// outside the prefixes pass through untouched. Every verification
// failure, whatever its cause, becomes a redirect to the login page with
// the originally-requested path preserved in the next parameter; the
// distinction between missing, invalid and expired tokens is kept for
// logs only.
func Gate(sessions *helpers.SessionManager, cookies *helpers.Manager, prefixes []string, loginPath string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !IsProtectedPath(path, prefixes) {
			c.Next()
			return
		}

		claims, err := sessions.Verify(cookies.Read(c))
		if err != nil {
			if logger != nil {
				logger.WithFields(logrus.Fields{"path": path, "reason": err.Error()}).
					Debug("gate redirecting to login")
			}
			q := url.Values{}
			q.Set("next", path)
			c.Redirect(http.StatusFound, loginPath+"?"+q.Encode())
			c.Abort()
			return
		}

		c.Set(CtxSessionNameKey, claims.Name)
		c.Set(CtxSessionEmailKey, claims.Email)
		c.Next()
	}
}
