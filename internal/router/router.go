package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/lost-and-found/internal/auth"       // session resolver used by the auth middleware
	"github.com/iliyamo/lost-and-found/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/lost-and-found/internal/middleware" // middleware for bearer-token authentication
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check, which
// load balancers and monitoring systems use to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Register and login
// live under /v1/auth and need no session; /v1/me requires a valid bearer
// token resolved through the session resolver.  The optional rate limiter
// middleware (Redis token bucket) is applied to the unauthenticated group to
// damp credential brute-forcing.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, resolver *auth.Resolver, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	// Registration creates the account and returns a token immediately.
	g.POST("/register", a.Register)
	// Login verifies credentials and returns a fresh token.
	g.POST("/login", a.Login)

	// Protected endpoints: every request passes through the session
	// resolver before reaching a handler.
	authd := e.Group("/v1")
	authd.Use(middleware.Authenticate(resolver))
	authd.GET("/me", a.Me)
}

// RegisterItems registers the authenticated item endpoints.  All of them run
// behind the bearer-token middleware; the per-item ownership check happens
// inside the handlers, after the listing's recorded owner is known.
func RegisterItems(e *echo.Echo, h *handler.ItemHandler, resolver *auth.Resolver) {
	g := e.Group("/v1")
	g.Use(middleware.Authenticate(resolver))
	// Create a listing owned by the caller.
	g.POST("/items", h.CreateItem)
	// Update or delete a listing; only the owner passes the guard.
	g.PUT("/items/:id", h.UpdateItem)
	g.DELETE("/items/:id", h.DeleteItem)
	// The caller's own listings.
	g.GET("/me/items", h.ListMyItems)
}

// RegisterPublic registers unauthenticated browse endpoints on the provided
// Echo instance.  These routes apply no auth middleware; the optional cache
// middleware (Redis) may be supplied to serve repeated listing queries
// without touching the database.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if cache != nil {
		g.Use(cache)
	}
	// Browse all listings with optional filters (category, status,
	// location, free text) and pagination.
	g.GET("/items", p.GetPublicItems)
	// Listing details by id.
	g.GET("/items/:id", p.GetPublicItem)
}
