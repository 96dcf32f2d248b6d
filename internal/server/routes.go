package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/database"
	"github.com/nfrund/courseboard/internal/handlers"
	"github.com/nfrund/courseboard/internal/middleware"
	"github.com/nfrund/courseboard/internal/storage"
	"github.com/nfrund/courseboard/internal/view/layouts"
	"github.com/nfrund/courseboard/web"
)

// registerRoutes sets up the routes that do not belong to a module.
func (s *Server) registerRoutes(svc Services, site layouts.SiteConfig) {
	homeHandler := handlers.NewHomeHandler(site)
	authHandler := handlers.NewAuthHandler(svc.Users, site, database.SessionDuration)
	fileHandler := storage.NewFileHandler(svc.Media)

	s.E.GET("/", homeHandler.HomeGet)

	s.E.GET("/auth/login", authHandler.LoginGet)
	s.E.POST("/auth/login", authHandler.LoginPost, middleware.RateLimiter())
	s.E.GET("/auth/logout", authHandler.Logout)
	s.E.POST("/auth/logout", authHandler.Logout)

	s.E.POST("/theme", handlers.ToggleTheme)

	s.E.GET(storage.MediaURLPrefix+"*", fileHandler.Download)
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		if s.conn != nil && !s.conn.IsHealthy() {
			return c.String(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.String(http.StatusOK, "OK")
	})
}
