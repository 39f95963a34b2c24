package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/roysiu-gh/restam/internal/auth"
	"github.com/roysiu-gh/restam/internal/handler"
	"github.com/roysiu-gh/restam/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication or
// handler state.  Currently it exposes only the health check used by
// load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff session endpoints.  Login, refresh
// and logout live under /v1/auth and need no existing session; /v1/me
// sits behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	protected := e.Group("/v1")
	protected.Use(middleware.JWTAuth(jwtSecret))
	protected.Use(middleware.RequireRole(auth.RoleManager, auth.RoleStaff))
	protected.GET("/me", a.Me)
}

// RegisterBookings registers the staff-facing booking endpoints under
// /v1/bookings.  Every route requires a valid access token with a
// staff role; the handlers trust the middleware for identity.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1/bookings",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(auth.RoleManager, auth.RoleStaff),
	)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/meals", h.ModifyMeals)
	g.PUT("/:id/notes", h.OverwriteNotes)
	g.POST("/:id/complete", h.Complete)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/reactivate", h.Reactivate)
}

// RegisterPublic registers the unauthenticated read-only views: venue
// document, menu, slot grid and occupancy.  Guests use these to browse
// before ringing up; the response-cache middleware (when enabled) is
// applied by the caller to exactly this group.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/venue", p.GetVenue)
	g.GET("/menu", p.GetMenu)
	g.GET("/schedule/moments", p.GetMoments)
	g.GET("/schedule/occupancy", p.GetOccupancy)
}
