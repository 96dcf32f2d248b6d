package layouts

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/view"
)

// ThemeCookie stores the user's colour scheme.
const ThemeCookie = "theme"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SiteConfig is the site-wide information shown in every page.
type SiteConfig struct {
	Title       string
	Description string
}

// PageData is everything the Base layout needs besides the page content.
type PageData struct {
	Title   string
	Site    SiteConfig
	Session *auth.Session
	Flash   view.FlashData
	Theme   string
}

// NewPageData collects the per-request layout state: the session, queued
// flash messages and the theme cookie.
func NewPageData(c echo.Context, site SiteConfig, title string) PageData {
	return PageData{
		Title:   title,
		Site:    site,
		Session: auth.OptionalSession(c),
		Flash:   view.GetFlashData(c),
		Theme:   Theme(c),
	}
}

// Theme returns the theme from the request cookie, light by default.
func Theme(c echo.Context) string {
	cookie, err := c.Cookie(ThemeCookie)
	if err != nil || cookie.Value != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// CalculateTitle builds the document title from the page title and the site
// name.
func CalculateTitle(title, site string) string {
	switch {
	case title != "" && site != "":
		return title + " - " + site
	case title != "":
		return title
	default:
		return site
	}
}
