package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies HS256 access tokens. The signing secret
// is loaded once at startup and never changes at runtime; given the same
// secret, tokens are pure functions of subject id and time, with no
// server-side session state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService from the signing secret and the
// access token time-to-live.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token for the given user id. The token carries the subject,
// issued-at = now and expires-at = now + TTL. Output is a compact URL-safe
// JWT string.
func (s *TokenService) Issue(userID uint64, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token against the service secret and the
// supplied clock, returning the embedded subject id. Failures map onto the
// sentinel errors: unparseable input -> ErrTokenMalformed, expiry ->
// ErrTokenExpired, MAC mismatch or wrong algorithm -> ErrBadSignature.
func (s *TokenService) Verify(raw string, now time.Time) (uint64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrBadSignature
		default:
			return 0, ErrBadSignature
		}
	}
	id, perr := strconv.ParseUint(claims.Subject, 10, 64)
	if perr != nil {
		return 0, ErrTokenMalformed
	}
	return id, nil
}
