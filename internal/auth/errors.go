// Package auth implements the authentication and authorization core of the
// service: password hashing, stateless access tokens, credential checks,
// session resolution and the ownership rule that gates item mutation. All
// failure kinds are exported sentinel errors so that callers can branch on
// them with errors.Is and translate them into HTTP responses. None of them
// is fatal to the process.
package auth

import "errors"

// ErrInvalidCredentials is returned by the Authenticator when either the
// login is unknown or the password does not match. The two cases are
// deliberately indistinguishable so the endpoint cannot be used to probe
// which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrPasswordTooLong is returned when a password exceeds the bcrypt input
// ceiling (72 bytes). The policy is to reject rather than silently truncate.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// ErrMalformedHash signals that a stored password hash is not a valid bcrypt
// string. This only happens when the stored data is corrupted; a plain
// mismatch is reported as a false verification result instead.
var ErrMalformedHash = errors.New("stored password hash is malformed")

// ErrTokenMalformed is returned when a token cannot be parsed at all.
var ErrTokenMalformed = errors.New("token is malformed")

// ErrBadSignature is returned when the token structure parses but the MAC
// does not match, either because the token was tampered with or because it
// was signed with a different secret.
var ErrBadSignature = errors.New("token signature mismatch")

// ErrTokenExpired is returned when the token is past its expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrIdentityNotFound is returned by the Resolver when a token verifies but
// the account it refers to no longer exists (deleted after issuance).
var ErrIdentityNotFound = errors.New("identity not found")

// ErrNotOwner is returned by Authorize when the authenticated identity does
// not own the resource it attempts to mutate. Handlers must map this to 403,
// never to 401 or 404: the caller is authenticated, just not the owner.
var ErrNotOwner = errors.New("resource belongs to another user")
