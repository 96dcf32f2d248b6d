package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	site layouts.SiteConfig
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(site layouts.SiteConfig) *HomeHandler {
	return &HomeHandler{site: site}
}

// HomeGet renders the landing page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	data := layouts.NewPageData(c, h.site, "")
	return c.Render(http.StatusOK, "", layouts.Page(data, HomePage(h.site, auth.OptionalSession(c) != nil)))
}
