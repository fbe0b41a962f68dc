package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifa360/ifa360-server/config"
	"github.com/ifa360/ifa360-server/pkg/helpers"
	"github.com/ifa360/ifa360-server/pkg/validation"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(httptest.NewRecorder())
	return l
}

func newAuthEngine(cfg *config.Config) (*gin.Engine, *helpers.SessionManager) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	sessions := helpers.NewSessionManager(cfg.AuthSecret, cfg.SessionTTL)
	cookies := helpers.NewCookie(cfg.SessionCookieName, cfg.CookieDomain, cfg.CookieSecure)
	h := NewAuthHandler(cfg, sessions, cookies, testLogger())

	r := gin.New()
	r.POST("/api/login", h.Login)
	r.POST("/api/logout", h.Logout)
	r.GET("/api/session", h.Session)
	return r, sessions
}

func gateConfig() *config.Config {
	return &config.Config{
		AccessCode:        "letmein",
		AuthSecret:        "test-secret",
		SessionTTL:        168 * time.Hour,
		SessionCookieName: "ifa360_session",
		CookieSecure:      true,
	}
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	r, sessions := newAuthEngine(gateConfig())

	w := postJSON(r, "/api/login", `{"code":"letmein","name":"Thandi","email":"thandi@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := w.Result()
	var session *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == "ifa360_session" {
			session = ck
		}
	}
	require.NotNil(t, session, "session cookie must be set")
	assert.True(t, session.HttpOnly)
	assert.True(t, session.Secure)
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
	assert.Equal(t, "/", session.Path)
	// cookie lifetime tracks the token expiry (7 days)
	assert.InDelta(t, int(168*time.Hour/time.Second), session.MaxAge, 5)

	claims, err := sessions.Verify(session.Value)
	require.NoError(t, err)
	assert.Equal(t, helpers.SessionSubject, claims.Subject)
	assert.Equal(t, "Thandi", claims.Name)
}

func TestLoginWrongCode(t *testing.T) {
	r, _ := newAuthEngine(gateConfig())

	w := postJSON(r, "/api/login", `{"code":"guess"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access code")
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginMissingCode(t *testing.T) {
	r, _ := newAuthEngine(gateConfig())

	w := postJSON(r, "/api/login", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnconfigured(t *testing.T) {
	cfg := gateConfig()
	cfg.AccessCode = ""
	r, _ := newAuthEngine(cfg)

	w := postJSON(r, "/api/login", `{"code":"letmein"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "server not configured")
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := newAuthEngine(gateConfig())

	w := postJSON(r, "/api/logout", ``)
	require.Equal(t, http.StatusOK, w.Code)

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "ifa360_session" {
			session = ck
		}
	}
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Less(t, session.MaxAge, 0)
}

func TestSessionEndpoint(t *testing.T) {
	r, sessions := newAuthEngine(gateConfig())

	// without a cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// with a valid cookie
	tok, _, err := sessions.Issue("Thandi", "thandi@example.com")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: "ifa360_session", Value: tok})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), helpers.SessionSubject)
	assert.Contains(t, w.Body.String(), "Thandi")
}
