package auth

import (
	"errors"
	"testing"

	"github.com/iliyamo/lost-and-found/internal/model"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	if err := Authorize(model.User{ID: 7}, 7); err != nil {
		t.Fatalf("owner must be allowed, got %v", err)
	}
	if err := Authorize(model.User{ID: 7}, 9); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("non-owner must be denied with ErrNotOwner, got %v", err)
	}
	// Denied is distinct from every unauthenticated failure kind.
	if errors.Is(ErrNotOwner, ErrIdentityNotFound) || errors.Is(ErrNotOwner, ErrInvalidCredentials) {
		t.Fatalf("ErrNotOwner must not overlap with authentication failures")
	}
}
