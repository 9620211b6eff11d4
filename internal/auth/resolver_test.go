package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/lost-and-found/internal/model"
)

func TestResolve_Success(t *testing.T) {
	t.Parallel()
	store := storeWith(t, model.User{ID: 9, Username: "bob"})
	tokens := NewTokenService([]byte("k"), 2*time.Hour)
	r := NewResolver(tokens, store)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tok, err := tokens.Issue(9, now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	u, err := r.Resolve(context.Background(), tok, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if u.ID != 9 || u.Username != "bob" {
		t.Fatalf("unexpected identity: %+v", u)
	}
}

func TestResolve_IdentityDeletedAfterIssue(t *testing.T) {
	t.Parallel()
	store := storeWith(t) // empty: the subject no longer exists
	tokens := NewTokenService([]byte("k"), 2*time.Hour)
	r := NewResolver(tokens, store)
	now := time.Now().UTC()

	tok, err := tokens.Issue(9, now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	_, err = r.Resolve(context.Background(), tok, now)
	if !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestResolve_TokenFailuresPropagate(t *testing.T) {
	t.Parallel()
	store := storeWith(t, model.User{ID: 9, Username: "bob"})
	tokens := NewTokenService([]byte("k"), time.Hour)
	r := NewResolver(tokens, store)
	now := time.Now().UTC()

	tok, err := tokens.Issue(9, now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := r.Resolve(context.Background(), tok, now.Add(2*time.Hour)); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if _, err := r.Resolve(context.Background(), "junk", now); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}

	other, err := NewTokenService([]byte("other"), time.Hour).Issue(9, now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := r.Resolve(context.Background(), other, now); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}
