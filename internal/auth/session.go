// Package auth resolves the signed-in user for a request.
package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/domain"
)

const (
	// CookieName holds the session token issued by UserRepository.SignIn.
	CookieName = "auth_token"
	// UserContextKey is where the session middleware stores the *domain.User.
	UserContextKey = "user"
	// LoginPath is where unauthenticated visitors are sent.
	LoginPath = "/auth/login"
)

// Session is the signed-in state of a request.
type Session struct {
	User *domain.User
}

// UserKey returns the record key of the signed-in user.
func (s *Session) UserKey() string {
	if s == nil {
		return ""
	}
	return domain.RecordKey(s.User.ID)
}

// OptionalSession returns the session for the request, or nil when nobody is
// signed in.
func OptionalSession(c echo.Context) *Session {
	user, ok := c.Get(UserContextKey).(*domain.User)
	if !ok || user == nil || user.ID == nil {
		return nil
	}
	return &Session{User: user}
}

// RequiredSession is OptionalSession for handlers that cannot run without a
// user. It returns domain.ErrUnauthenticated when nobody is signed in.
func RequiredSession(c echo.Context) (*Session, error) {
	s := OptionalSession(c)
	if s == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s, nil
}

// SetCookie stores the session token on the response.
func SetCookie(c echo.Context, token string, maxAge time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Token returns the session token sent by the client, if any.
func Token(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
