package catalog

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/auth"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/middleware"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

// Handler serves the public course explorer and the signed-in user's
// course list.
type Handler struct {
	courses domain.CourseRepository
	site    layouts.SiteConfig
}

func NewHandler(courses domain.CourseRepository, site layouts.SiteConfig) *Handler {
	return &Handler{courses: courses, site: site}
}

// Explorer lists every published course.
func (h *Handler) Explorer(c echo.Context) error {
	ctx := c.Request().Context()
	courses, err := h.courses.ListPublished(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to list published courses", slog.String("error", err.Error()))
		return err
	}
	page := courseGrid("Explorer", "No course has been published yet.", courses)
	return c.Render(http.StatusOK, "", layouts.Page(layouts.NewPageData(c, h.site, "Explorer"), page))
}

// MyCourses lists the courses the signed-in user has joined.
func (h *Handler) MyCourses(c echo.Context) error {
	ctx := c.Request().Context()
	session, err := auth.RequiredSession(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, auth.LoginPath)
	}

	courses, err := h.courses.ListForUser(ctx, session.UserKey())
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to list user courses", slog.String("error", err.Error()))
		return err
	}
	page := courseGrid("My courses", "You have not joined any course yet.", courses)
	return c.Render(http.StatusOK, "", layouts.Page(layouts.NewPageData(c, h.site, "Courses"), page))
}
