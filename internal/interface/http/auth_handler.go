package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ifa360/ifa360-server/config"
	"github.com/ifa360/ifa360-server/pkg/helpers"
	"github.com/ifa360/ifa360-server/pkg/response"
	"github.com/ifa360/ifa360-server/pkg/validation"
)

// AuthHandler implements the access-code gate: exchange the shared code
// for a signed session cookie, surface the current session, log out.
type AuthHandler struct {
	Cfg      *config.Config
	Sessions *helpers.SessionManager
	Cookies  *helpers.Manager
	Logger   *logrus.Logger
}

func NewAuthHandler(cfg *config.Config, sessions *helpers.SessionManager, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Sessions: sessions, Cookies: cookies, Logger: logger}
}

type loginRequest struct {
	Code  string `json:"code" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// Login POST /api/login {code, name?, email?}
// Issues the session cookie when the submitted code matches the
// configured access code. Name and email ride along inside the token
// purely for display; they are never verified.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.Cfg.AccessCode == "" || h.Cfg.AuthSecret == "" {
		h.Logger.Error("ACCESS_CODE or AUTH_SECRET not configured")
		response.Fail(c, http.StatusInternalServerError, "server not configured", nil)
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Code), []byte(h.Cfg.AccessCode)) != 1 {
		response.Fail(c, http.StatusUnauthorized, "invalid access code", nil)
		return
	}

	token, exp, err := h.Sessions.Issue(req.Name, req.Email)
	if err != nil {
		h.Logger.WithField("error", err.Error()).Error("session issuance failed")
		response.Fail(c, http.StatusInternalServerError, "could not issue session", nil)
		return
	}

	h.Cookies.SetSession(c, token, exp)
	response.OK(c, http.StatusOK, gin.H{"ok": true}, "login successful", map[string]any{"expires_at": exp})
}

// Logout POST /api/logout
// Stateless logout: only the cookie is cleared; no token record exists
// server-side to invalidate.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.OK[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// Session GET /api/session
// Returns the claims of the current session for front-end display.
func (h *AuthHandler) Session(c *gin.Context) {
	claims, err := h.Sessions.Verify(h.Cookies.Read(c))
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"subject":    claims.Subject,
		"name":       claims.Name,
		"email":      claims.Email,
		"expires_at": claims.ExpiresAt.Time,
	}, "session", nil)
}
