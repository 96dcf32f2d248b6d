package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/courseboard/internal/config"
	"github.com/nfrund/courseboard/internal/database"
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/events"
	"github.com/nfrund/courseboard/internal/handlers"
	"github.com/nfrund/courseboard/internal/middleware"
	"github.com/nfrund/courseboard/internal/module"
	"github.com/nfrund/courseboard/internal/registry"
	"github.com/nfrund/courseboard/internal/rendering"
	"github.com/nfrund/courseboard/internal/storage"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

// Services are the backends the HTTP layer is built on.
type Services struct {
	Users   domain.UserRepository
	Courses domain.CourseRepository
	Media   *storage.MediaStore
	// Bus is created when nil.
	Bus *events.WatermillBus
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	Users    domain.UserRepository

	conn    *database.Connection
	bus     *events.WatermillBus
	modules []module.Module
	cancel  context.CancelFunc
}

// New connects to SurrealDB, applies the schema and builds the server on
// top of the SurrealDB stores and the on-disk media directory.
func New(ctx context.Context, cfg config.Provider) (*Server, error) {
	conn := database.NewConnection(cfg)
	if err := conn.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	conn.StartMonitoring()

	if err := database.ApplySchema(ctx, conn); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	users, err := database.NewUserStore(conn)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	courses, err := database.NewCourseStore(conn)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	disk, err := storage.NewDiskStore(cfg.GetMediaDir())
	if err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}

	s, err := NewWithServices(cfg, Services{
		Users:   users,
		Courses: courses,
		Media:   storage.NewMediaStore(disk),
	})
	if err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	s.conn = conn
	return s, nil
}

// NewWithServices builds the echo instance, registers the shared services
// and boots every application module.
func NewWithServices(cfg config.Provider, svc Services) (*Server, error) {
	if svc.Users == nil || svc.Courses == nil || svc.Media == nil {
		return nil, fmt.Errorf("server: users, courses and media are required")
	}
	if svc.Bus == nil {
		svc.Bus = events.NewWatermillBus()
	}

	site := layouts.SiteConfig{
		Title:       cfg.GetSiteTitle(),
		Description: cfg.GetSiteDescription(),
	}
	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.Session(svc.Users))

	reg := registry.New(cfg)
	registry.Set(reg, registry.UserRepositoryKey, svc.Users)
	registry.Set(reg, registry.CourseRepositoryKey, svc.Courses)
	registry.Set(reg, registry.MediaStoreKey, svc.Media)
	registry.Set[events.Publisher](reg, registry.PublisherKey, svc.Bus)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, renderer)
	registry.Set(reg, registry.SiteConfigKey, site)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		E:        e,
		Cfg:      cfg,
		Registry: reg,
		Users:    svc.Users,
		bus:      svc.Bus,
		cancel:   cancel,
	}

	s.registerRoutes(svc, site)

	if err := events.Audit(ctx, svc.Bus, slog.Default()); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start course audit log: %w", err)
	}

	if err := s.bootModules(ctx, appModules(reg)); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}
