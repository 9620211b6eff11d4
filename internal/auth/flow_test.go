package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/lost-and-found/internal/model"
)

// TestRegisterLoginMutateFlow walks the whole core once: register a user,
// issue a token, resolve it back into an identity and run the ownership
// check against items owned by that user and by someone else.
func TestRegisterLoginMutateFlow(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(bcrypt.MinCost)
	tokens := NewTokenService([]byte("flow-secret"), 2*time.Hour)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// Registration: the store only ever sees the hash.
	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	store := storeWith(t, model.User{ID: 1, Username: "alice", PasswordHash: hash})

	// Login.
	authn := NewAuthenticator(store, hasher)
	u, err := authn.Authenticate(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	tok, err := tokens.Issue(u.ID, now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Subsequent authenticated request.
	resolver := NewResolver(tokens, store)
	identity, err := resolver.Resolve(ctx, tok, now.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if identity.ID != 1 || identity.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	// Mutation gate: own item passes, someone else's does not.
	if err := Authorize(identity, 1); err != nil {
		t.Fatalf("mutating own item must be allowed, got %v", err)
	}
	if err := Authorize(identity, 2); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("mutating another user's item must be denied, got %v", err)
	}
}
