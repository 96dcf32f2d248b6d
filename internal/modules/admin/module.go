// Package admin is the course administration area: course detail with its
// enrolled users, course editing, lessons and user details.
package admin

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/events"
	"github.com/nfrund/courseboard/internal/middleware"
	"github.com/nfrund/courseboard/internal/module"
	"github.com/nfrund/courseboard/internal/registry"
	"github.com/nfrund/courseboard/internal/storage"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

// Dependencies are the services the admin pages are built on.
type Dependencies struct {
	Courses   domain.CourseRepository
	Users     domain.UserRepository
	Media     *storage.MediaStore
	Publisher events.Publisher
	Site      layouts.SiteConfig
}

// DependenciesFrom pulls the shared services out of the registry.
func DependenciesFrom(reg *registry.Registry) Dependencies {
	return Dependencies{
		Courses:   registry.MustGet(reg, registry.CourseRepositoryKey),
		Users:     registry.MustGet(reg, registry.UserRepositoryKey),
		Media:     registry.MustGet(reg, registry.MediaStoreKey),
		Publisher: registry.MustGet(reg, registry.PublisherKey),
		Site:      registry.MustGet(reg, registry.SiteConfigKey),
	}
}

// Module mounts the admin pages.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

var _ module.Module = (*Module)(nil)

// New creates the admin module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name implements module.Module.
func (m *Module) Name() string {
	return "admin"
}

// Boot mounts the admin routes under /admin. Every route requires a
// signed-in user.
func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	if m.deps.Courses == nil || m.deps.Users == nil || m.deps.Media == nil || m.deps.Publisher == nil {
		return errors.New("admin module is missing dependencies")
	}
	m.handler = NewHandler(m.deps)

	admin := group.Group("/admin", middleware.RequireAuth)
	admin.GET("/courses", m.handler.ListCourses)
	admin.GET("/courses/:courseId", m.handler.CoursePage)
	admin.GET("/courses/:courseId/edit", m.handler.EditCourse)
	admin.POST("/courses/:courseId/edit", m.handler.UpdateCourse)
	admin.GET("/courses/:courseId/lessons", m.handler.Lessons)
	admin.GET("/users/:userId", m.handler.UserDetail)
	return nil
}
