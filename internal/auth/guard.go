package auth

import "github.com/iliyamo/lost-and-found/internal/model"

// Authorize is the ownership check gating item mutation: it returns nil iff
// the authenticated identity is the recorded owner of the resource, and
// ErrNotOwner otherwise. Pure predicate, no state, no side effects.
func Authorize(identity model.User, resourceOwnerID uint64) error {
	if identity.ID == resourceOwnerID {
		return nil
	}
	return ErrNotOwner
}
