// Package policy holds the authentication and ownership gates shared by the
// contest, bookmark and solution services. A zero user id means anonymous.
package policy

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotOwner        = errors.New("requester does not own this resource")
)

// RequireAuthenticated fails when no user is attached to the request.
func RequireAuthenticated(userID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	return nil
}

// RequireOwner fails when the requester is anonymous or is not the owner.
func RequireOwner(ownerID, requesterID uint64) error {
	if err := RequireAuthenticated(requesterID); err != nil {
		return err
	}
	if ownerID != requesterID {
		return ErrNotOwner
	}
	return nil
}

// CanEdit reports whether the viewer may mutate a resource owned by ownerID.
func CanEdit(ownerID, viewerID uint64) bool {
	return RequireOwner(ownerID, viewerID) == nil
}
