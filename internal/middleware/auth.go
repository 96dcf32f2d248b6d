package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/domain"
)

// Authenticator resolves a session token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Session loads the user behind the auth cookie, when there is one, and
// stores it on the context for auth.OptionalSession. Invalid or expired
// tokens clear the cookie; the request continues anonymously.
func Session(store Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.Token(c)
			if token == "" {
				return next(c)
			}

			user, err := store.Authenticate(c.Request().Context(), token)
			if err != nil || user == nil {
				FromContext(c.Request().Context()).Debug("Discarding invalid session cookie", "error", err)
				auth.ClearCookie(c)
				return next(c)
			}

			c.Set(auth.UserContextKey, user)
			withLogger(c, FromContext(c.Request().Context()).With("user_id", domain.RecordKey(user.ID)))
			return next(c)
		}
	}
}

// RequireAuth redirects to the login page unless Session found a user.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if auth.OptionalSession(c) == nil {
			return c.Redirect(http.StatusSeeOther, auth.LoginPath)
		}
		return next(c)
	}
}
