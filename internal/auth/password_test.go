package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *Hasher {
	t.Helper()
	// MinCost keeps the bcrypt work factor low so the suite stays fast.
	return NewHasher(bcrypt.MinCost)
}

func TestHashAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "secret123" || hash == "" {
		t.Fatalf("hash must be an opaque non-empty string, got %q", hash)
	}

	ok, err := h.Verify("secret123", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected correct password to verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	ok, err := h.Verify("not-the-password", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHash_NonDeterministic(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	for _, hash := range []string{h1, h2} {
		ok, err := h.Verify("same-password", hash)
		if err != nil || !ok {
			t.Fatalf("both hashes must verify the password: ok=%v err=%v", ok, err)
		}
	}
}

func TestHash_PasswordTooLong(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	long := strings.Repeat("x", MaxPasswordBytes+1) // 73 bytes, over the ceiling
	if _, err := h.Hash(long); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if _, err := h.Verify(long, "$2a$10$whatever"); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong on verify, got %v", err)
	}

	// Exactly at the ceiling is still accepted.
	atLimit := strings.Repeat("x", MaxPasswordBytes)
	if _, err := h.Hash(atLimit); err != nil {
		t.Fatalf("72-byte password must hash, got %v", err)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()
	h := newTestHasher(t)

	for _, stored := range []string{"", "plaintext", "$9z$garbage"} {
		if _, err := h.Verify("secret123", stored); !errors.Is(err, ErrMalformedHash) {
			t.Fatalf("stored=%q: expected ErrMalformedHash, got %v", stored, err)
		}
	}
}
