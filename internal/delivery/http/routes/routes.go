package routes

import (
	"github.com/gofiber/fiber/v3"

	"directin/internal/delivery/http/handler"
	"directin/internal/delivery/http/middleware"
	"directin/internal/ws"
)

// Registry owns every HTTP handler and wires them onto the app.
type Registry struct {
	health  *handler.HealthHandler
	auth    *handler.AuthHandler
	profile *handler.ProfileHandler
	company *handler.CompanyHandler
	matches *handler.MatchesHandler
	badge   *handler.BadgeHandler
	refresh *handler.RefreshHandler
	tracked *handler.TrackedHandler
	wsHandl *ws.Handler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	profile *handler.ProfileHandler,
	company *handler.CompanyHandler,
	matches *handler.MatchesHandler,
	badge *handler.BadgeHandler,
	refresh *handler.RefreshHandler,
	tracked *handler.TrackedHandler,
	wsHandler *ws.Handler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:  health,
		auth:    auth,
		profile: profile,
		company: company,
		matches: matches,
		badge:   badge,
		refresh: refresh,
		tracked: tracked,
		wsHandl: wsHandler,
		authMw:  authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	if r.wsHandl != nil {
		app.Get("/ws", r.wsHandl.HandleUpdatesWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.auth.RegisterRoutes(v1.Group("/auth"))

	// Reads stay open to the overlay; mutations require the bearer token.
	auth := r.authMw.Middleware()
	r.profile.RegisterRoutes(v1, auth)
	r.company.RegisterRoutes(v1, auth)
	r.matches.RegisterRoutes(v1)
	r.badge.RegisterRoutes(v1)
	r.refresh.RegisterRoutes(v1, auth)
	r.tracked.RegisterRoutes(v1, auth)
}
