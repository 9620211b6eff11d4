package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/lost-and-found/internal/model"
)

// IdentityStore is the read surface of the record store the core depends
// on. FindByLogin resolves the configured login key (username or email,
// fixed per deployment); both methods signal an absent row with
// sql.ErrNoRows, the way the repository layer naturally does.
type IdentityStore interface {
	FindByLogin(ctx context.Context, login string) (model.User, error)
	FindByID(ctx context.Context, id uint64) (model.User, error)
}

// dummyHash is a valid bcrypt hash of a throwaway string. When a login does
// not exist, the Authenticator still runs one bcrypt comparison against it
// so the unknown-login and wrong-password paths take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Authenticator validates a login/password pair against stored credentials.
// It is read-only: no lockout counters, no side effects.
type Authenticator struct {
	users  IdentityStore
	hasher *Hasher
}

// NewAuthenticator wires the record store and the credential hasher.
func NewAuthenticator(users IdentityStore, hasher *Hasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

// Authenticate looks up the stored credential by login and verifies the
// password. Unknown logins and wrong passwords both come back as
// ErrInvalidCredentials; over-long passwords as ErrPasswordTooLong; a
// corrupted stored hash as ErrMalformedHash. Any other storage error is
// passed through for the caller to report as a server failure.
func (a *Authenticator) Authenticate(ctx context.Context, login, password string) (model.User, error) {
	if len(password) > MaxPasswordBytes {
		return model.User{}, ErrPasswordTooLong
	}
	u, err := a.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn a comparison so the miss costs as much as a mismatch.
			_, _ = a.hasher.Verify(password, dummyHash)
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}
	ok, err := a.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}
