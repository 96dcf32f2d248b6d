package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/middleware"
	"github.com/nfrund/courseboard/internal/view"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

const formEmailFlash = "form_email"

// SessionStore opens and closes user sessions.
type SessionStore interface {
	SignIn(ctx context.Context, user *domain.User, password string) (string, error)
	SignOut(ctx context.Context, token string) error
}

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	users      SessionStore
	site       layouts.SiteConfig
	sessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler. Session cookies expire after
// sessionTTL.
func NewAuthHandler(users SessionStore, site layouts.SiteConfig, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, site: site, sessionTTL: sessionTTL}
}

// LoginGet renders the login page, prefilled with the email of a failed
// attempt.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	if auth.OptionalSession(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	// Consumed here and persisted by NewPageData, which always finds the
	// error flash queued alongside it.
	var prefilledEmail string
	if sess, err := session.Get("flash-session", c); err == nil {
		if flashes := sess.Flashes(formEmailFlash); len(flashes) > 0 {
			prefilledEmail, _ = flashes[0].(string)
		}
	}

	data := layouts.NewPageData(c, h.site, "Login")
	return c.Render(http.StatusOK, "", layouts.Page(data, LoginPage(prefilledEmail)))
}

// LoginPost checks the credentials and sets the session cookie.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		return h.loginFailed(c, req.Email, "Please enter a valid email and password.")
	}

	token, err := h.users.SignIn(ctx, &domain.User{Email: req.Email}, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			logger.Warn("Failed login attempt", "email", req.Email)
			return h.loginFailed(c, req.Email, "Invalid email or password.")
		}
		logger.Error("Sign in failed", slog.String("error", err.Error()))
		return err
	}

	auth.SetCookie(c, token, h.sessionTTL)
	view.SetFlashSuccess(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) loginFailed(c echo.Context, email, msg string) error {
	// SetFlashError saves the session, so the email flash goes in first.
	if sess, err := session.Get("flash-session", c); err == nil {
		sess.AddFlash(email, formEmailFlash)
	}
	view.SetFlashError(c, msg)
	return c.Redirect(http.StatusSeeOther, auth.LoginPath)
}

// Logout deletes the server-side session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if token := auth.Token(c); token != "" {
		if err := h.users.SignOut(ctx, token); err != nil {
			middleware.FromContext(ctx).Warn("Failed to delete session", "error", err)
		}
	}
	auth.ClearCookie(c)

	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, auth.LoginPath)
}
