package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/courseboard/internal/module"
	"github.com/nfrund/courseboard/internal/modules/admin"
	"github.com/nfrund/courseboard/internal/modules/catalog"
	"github.com/nfrund/courseboard/internal/registry"
)

// appModules lists the application modules in boot order.
func appModules(reg *registry.Registry) []module.Module {
	return []module.Module{
		admin.New(admin.DependenciesFrom(reg)),
		catalog.New(catalog.Dependencies{
			Courses: registry.MustGet(reg, registry.CourseRepositoryKey),
			Site:    registry.MustGet(reg, registry.SiteConfigKey),
		}),
	}
}

// bootModules registers every module before booting any of them, so a
// module can rely on services published by the others.
func (s *Server) bootModules(ctx context.Context, modules []module.Module) error {
	for _, m := range modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range modules {
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	s.modules = modules
	return nil
}
