// Package catalog lists courses for learners.
package catalog

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/middleware"
	"github.com/nfrund/courseboard/internal/module"
	"github.com/nfrund/courseboard/internal/registry"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

type Dependencies struct {
	Courses domain.CourseRepository
	Site    layouts.SiteConfig
}

type Module struct {
	module.BaseModule
	deps Dependencies
}

var _ module.Module = (*Module)(nil)

func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "catalog"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	h := NewHandler(m.deps.Courses, m.deps.Site)
	group.GET("/explorer", h.Explorer)
	group.GET("/courses", h.MyCourses, middleware.RequireAuth)
	return nil
}
