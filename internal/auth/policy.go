package auth

import (
	"errors"

	"github.com/yukikurage/empleo-joven-api/internal/models"
)

var (
	// ErrNotOwner is returned when a non-admin caller targets a resource
	// owned by another user.
	ErrNotOwner = errors.New("not resource owner")
	// ErrRoleNotAllowed is returned when the caller's role is outside the
	// allow-list of a route.
	ErrRoleNotAllowed = errors.New("role not allowed")
)

// RoleSet is an allow-list of roles fixed when a route is registered.
type RoleSet struct {
	roles []models.RoleID
}

func AllowRoles(roles ...models.RoleID) RoleSet {
	return RoleSet{roles: append([]models.RoleID(nil), roles...)}
}

func (s RoleSet) Permits(role models.RoleID) bool {
	for _, r := range s.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Roles returns a copy of the allowed roles.
func (s RoleSet) Roles() []models.RoleID {
	return append([]models.RoleID(nil), s.roles...)
}

// RequireRole fails with ErrRoleNotAllowed unless the identity's role is in
// the set.
func (s RoleSet) RequireRole(identity Identity) error {
	if !s.Permits(identity.RoleID) {
		return ErrRoleNotAllowed
	}
	return nil
}

// RequireOwner admits administrators and the user owning the resource.
// Callers must have confirmed the resource exists before asking.
func RequireOwner(identity Identity, ownerID uint64) error {
	if identity.IsAdmin() || identity.UserID == ownerID {
		return nil
	}
	return ErrNotOwner
}
