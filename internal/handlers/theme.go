package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

// ToggleTheme flips the theme cookie and asks htmx to reload the page.
func ToggleTheme(c echo.Context) error {
	next := layouts.ThemeDark
	if layouts.Theme(c) == layouts.ThemeDark {
		next = layouts.ThemeLight
	}

	c.SetCookie(&http.Cookie{
		Name:     layouts.ThemeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	c.Response().Header().Set("HX-Refresh", "true")
	return c.NoContent(http.StatusNoContent)
}
