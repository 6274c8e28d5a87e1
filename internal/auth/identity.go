package auth

import "github.com/yukikurage/empleo-joven-api/internal/models"

// Identity is the caller as asserted by a verified token. It lives for a
// single request and is never persisted.
type Identity struct {
	UserID uint64
	RoleID models.RoleID
}

func (i Identity) IsAdmin() bool {
	return i.Is(models.RoleAdmin)
}

func (i Identity) Is(role models.RoleID) bool {
	return i.RoleID == role
}
