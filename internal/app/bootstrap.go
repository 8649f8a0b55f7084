package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/handler"
	"directin/internal/delivery/http/middleware"
	"directin/internal/delivery/http/routes"
	"directin/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the HTTP app, returning a cleanup
// that releases every held resource.
func Bootstrap(c *Container) (*App, func() error, error) {
	a := New(c)

	go c.Hub.Run()
	if err := c.Scheduler.Start(); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		c.Scheduler.Stop()
		return c.Close()
	}
	return a, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}
	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		handler.NewAuthHandler(c.Auth),
		handler.NewProfileHandler(c.Profile),
		handler.NewCompanyHandler(c.Profile, c.Matches),
		handler.NewMatchesHandler(c.Matches),
		handler.NewBadgeHandler(c.Badge),
		handler.NewRefreshHandler(c.Refresh),
		handler.NewTrackedHandler(c.Tracked),
		ws.NewHandler(c.Hub, c.Logger),
		middleware.NewAuthMiddleware(c.JWT),
	)
	registry.Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
