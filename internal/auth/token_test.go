package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()
	svc := NewTokenService([]byte("test-secret"), 2*time.Hour)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tok, err := svc.Issue(42, now)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	// Anywhere inside the TTL window the subject comes back unchanged.
	for _, delta := range []time.Duration{0, time.Minute, 2*time.Hour - time.Second} {
		got, err := svc.Verify(tok, now.Add(delta))
		require.NoError(t, err, "delta=%s", delta)
		require.Equal(t, uint64(42), got)
	}
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()
	svc := NewTokenService([]byte("test-secret"), 2*time.Hour)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tok, err := svc.Issue(7, now)
	require.NoError(t, err)

	for _, delta := range []time.Duration{2*time.Hour + time.Second, 48 * time.Hour} {
		_, err := svc.Verify(tok, now.Add(delta))
		require.ErrorIs(t, err, ErrTokenExpired, "delta=%s", delta)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tok, err := NewTokenService([]byte("right-secret"), time.Hour).Issue(7, now)
	require.NoError(t, err)

	_, err = NewTokenService([]byte("wrong-secret"), time.Hour).Verify(tok, now)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenService_Tampered(t *testing.T) {
	t.Parallel()
	svc := NewTokenService([]byte("test-secret"), time.Hour)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tok, err := svc.Issue(7, now)
	require.NoError(t, err)

	// Flip one character of the payload segment. The claims still decode
	// but the MAC no longer matches; the subject must never leak through.
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[3] == 'a' {
		payload[3] = 'b'
	} else {
		payload[3] = 'a'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Verify(tampered, now)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()
	svc := NewTokenService([]byte("test-secret"), time.Hour)
	now := time.Now().UTC()

	for _, raw := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(raw, now)
		require.ErrorIs(t, err, ErrTokenMalformed, "raw=%q", raw)
	}
}
