package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/stretchr/testify/assert"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

type fakeAuthenticator struct {
	users map[string]*domain.User
}

func (f fakeAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func TestAuthMiddleware(t *testing.T) {
	id := surrealmodels.NewRecordID("user", "alice")
	store := fakeAuthenticator{users: map[string]*domain.User{
		"good-token": {ID: &id, Email: "alice@example.com"},
	}}

	e := echo.New()
	e.Use(Session(store))

	e.GET("/app/dashboard", func(c echo.Context) error {
		s, err := auth.RequiredSession(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, "Welcome "+s.User.Email)
	}, RequireAuth)
	e.GET("/public", func(c echo.Context) error {
		if auth.OptionalSession(c) == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, "signed in")
	})

	t.Run("unauthenticated user is redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	})

	t.Run("authenticated user can access protected route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good-token"})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome alice@example.com", rec.Body.String())
	})

	t.Run("invalid token is cleared and redirected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "this-is-an-invalid-token"})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), auth.CookieName+"=;")
	})

	t.Run("public pages stay reachable with a bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "expired"})
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}

func TestFromContext(t *testing.T) {
	e := echo.New()
	var got bool
	e.GET("/", func(c echo.Context) error {
		got = FromContext(c.Request().Context()) != nil
		return c.NoContent(http.StatusNoContent)
	}, Logger)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, got)
	assert.NotNil(t, FromContext(context.Background()))
}

func TestLogger_CarriesRequestAndUser(t *testing.T) {
	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, nil)))
	defer slog.SetDefault(originalLogger)

	id := surrealmodels.NewRecordID("user", "alice")
	store := fakeAuthenticator{users: map[string]*domain.User{
		"good-token": {ID: &id, Email: "alice@example.com"},
	}}

	e := echo.New()
	e.Use(echomw.RequestID(), Logger, Session(store))
	e.GET("/courses", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("handled")
		return c.NoContent(http.StatusNoContent)
	})

	t.Run("signed in", func(t *testing.T) {
		logBuffer.Reset()
		req := httptest.NewRequest(http.MethodGet, "/courses", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good-token"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		out := logBuffer.String()
		assert.Contains(t, out, "msg=handled")
		assert.Contains(t, out, "request_id="+rec.Header().Get(echo.HeaderXRequestID))
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/courses")
		assert.Contains(t, out, "user_id=alice")
	})

	t.Run("anonymous", func(t *testing.T) {
		logBuffer.Reset()
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/courses", nil))

		out := logBuffer.String()
		assert.Contains(t, out, "msg=handled")
		assert.NotContains(t, out, "user_id=")
	})
}
