package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/lost-and-found/internal/model"
)

// Resolver turns an inbound bearer token into an authenticated identity.
// It is the single gateway between the token layer and request handling:
// every identity-scoped operation goes through Resolve before touching the
// record store.
type Resolver struct {
	tokens *TokenService
	users  IdentityStore
}

// NewResolver wires the token service and the record store.
func NewResolver(tokens *TokenService, users IdentityStore) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve verifies the token against the supplied clock and loads the
// identity it refers to. Token failures (ErrTokenMalformed, ErrBadSignature,
// ErrTokenExpired) propagate unchanged; a token whose subject no longer
// exists yields ErrIdentityNotFound, which covers accounts deleted after
// the token was issued.
func (r *Resolver) Resolve(ctx context.Context, raw string, now time.Time) (model.User, error) {
	id, err := r.tokens.Verify(raw, now)
	if err != nil {
		return model.User{}, err
	}
	u, err := r.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrIdentityNotFound
		}
		return model.User{}, err
	}
	return u, nil
}
