package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/empleo-joven-api/internal/models"
)

func TestRoleSet_AdmitsExactlyItsAllowList(t *testing.T) {
	all := []models.RoleID{models.RoleYouth, models.RoleCompany, models.RoleAdmin, 3, 99}

	sets := [][]models.RoleID{
		{models.RoleYouth},
		{models.RoleAdmin},
		{models.RoleCompany, models.RoleAdmin},
		{models.RoleYouth, models.RoleAdmin},
		{models.RoleYouth, models.RoleCompany, models.RoleAdmin},
	}

	for _, allowed := range sets {
		set := AllowRoles(allowed...)
		for _, role := range all {
			err := set.RequireRole(Identity{UserID: 1, RoleID: role})
			if contains(allowed, role) {
				assert.NoError(t, err, "roles %v should admit %v", allowed, role)
			} else {
				assert.ErrorIs(t, err, ErrRoleNotAllowed, "roles %v should deny %v", allowed, role)
			}
		}
	}
}

func TestRoleSet_RolesReturnsCopy(t *testing.T) {
	set := AllowRoles(models.RoleCompany, models.RoleAdmin)
	roles := set.Roles()
	roles[0] = models.RoleYouth

	assert.False(t, set.Permits(models.RoleYouth))
	assert.Equal(t, []models.RoleID{models.RoleCompany, models.RoleAdmin}, set.Roles())
}

func TestRequireOwner(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		ownerID  uint64
		wantErr  error
	}{
		{"owner", Identity{UserID: 5, RoleID: models.RoleCompany}, 5, nil},
		{"admin on foreign resource", Identity{UserID: 1, RoleID: models.RoleAdmin}, 5, nil},
		{"other company", Identity{UserID: 6, RoleID: models.RoleCompany}, 5, ErrNotOwner},
		{"youth", Identity{UserID: 7, RoleID: models.RoleYouth}, 5, ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOwner(tt.identity, tt.ownerID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func contains(roles []models.RoleID, role models.RoleID) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
