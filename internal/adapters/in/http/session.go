package http

import (
	"net/http"
	"net/url"
	"strings"

	"penguinadmin/internal/auth"

	"github.com/labstack/echo/v4"
)

const sessionKey = "session"

// session is attached to authenticated requests. Token is the rotated token the
// response must hand back to the browser.
type session struct {
	Token    string
	Identity auth.Identity
}

// requireSession accepts a session token from the form field "token", the query
// parameter "token", an "Authorization: Bearer" header or "X-Access-Token", in
// that order. A valid token is rotated; anything else is answered with 401.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := sessionToken(c)
		if raw == "" {
			return c.String(http.StatusUnauthorized, "Access denied: missing session token.")
		}

		rotated, who, err := s.sessions.Rotate(raw)
		if err != nil {
			return c.String(http.StatusUnauthorized, "Invalid or expired session token.")
		}

		c.Set(sessionKey, session{Token: rotated, Identity: who})
		c.Response().Header().Set("X-Access-Token", rotated)
		return next(c)
	}
}

func sessionToken(c echo.Context) string {
	if t := c.FormValue("token"); t != "" {
		return t
	}
	if t := c.QueryParam("token"); t != "" {
		return t
	}
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Request().Header.Get("X-Access-Token")
}

func currentSession(c echo.Context) session {
	sess, _ := c.Get(sessionKey).(session)
	return sess
}

// withToken appends the rotated session token to an admin path.
func withToken(path, token string) string {
	return path + "?token=" + url.QueryEscape(token)
}

// consumeCSRF validates the submitted anti-forgery token exactly once. A store
// failure counts as a rejection.
func (s *Server) consumeCSRF(c echo.Context) bool {
	ctx := c.Request().Context()
	ok, err := s.csrf.ValidateAndConsume(ctx, c.FormValue("csrf_token"))
	if err != nil {
		s.logger.ErrorContext(ctx, "Anti-forgery store failed", "error", err)
		return false
	}
	return ok
}

func (s *Server) forbidden(c echo.Context) error {
	return c.String(http.StatusForbidden, "Invalid anti-forgery token.")
}
