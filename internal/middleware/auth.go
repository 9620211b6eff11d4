package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming
	"time"     // time source handed to the session resolver

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/lost-and-found/internal/auth"  // session resolver and failure kinds
	"github.com/iliyamo/lost-and-found/internal/model" // identity value stored in context
)

// Context keys under which the authenticated principal is stored.  Handlers
// read the full identity via CurrentIdentity; the string user id is kept
// alongside for components that only need a label (e.g. rate limit keys).
const (
	identityKey = "identity"
	userIDKey   = "user_id"
)

// Authenticate returns an Echo middleware that extracts the Bearer token
// from the Authorization header and hands it to the session resolver — the
// only place in the service where a request gains an authenticated
// principal.  Every resolver failure (malformed token, bad signature,
// expiry, deleted account) maps to 401: from the client's point of view
// they all mean "log in again".  On success the resolved identity is stored
// in the request context for handlers downstream.
func Authenticate(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the Authorization header.  A valid header starts with
			// "Bearer " followed by the token; anything else is rejected
			// before the resolver is involved.
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			identity, err := resolver.Resolve(c.Request().Context(), raw, time.Now().UTC())
			if err != nil {
				// ErrTokenMalformed, ErrBadSignature, ErrTokenExpired and
				// ErrIdentityNotFound all collapse to unauthenticated here;
				// the distinction only matters server-side.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(identityKey, identity)
			c.Set(userIDKey, identity.ID)
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity the Authenticate middleware stored in
// the context.  The boolean is false on routes that never went through the
// middleware, which in practice means a wiring mistake.
func CurrentIdentity(c echo.Context) (model.User, bool) {
	u, ok := c.Get(identityKey).(model.User)
	return u, ok
}
