package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleNames(t *testing.T) {
	assert.Equal(t, "joven", RoleYouth.String())
	assert.Equal(t, "empresa", RoleCompany.String())
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "role(4)", RoleID(4).String())
}

func TestBuiltinRoles(t *testing.T) {
	roles := BuiltinRoles()
	assert.Equal(t, []Role{
		{ID: 1, Name: "joven"},
		{ID: 2, Name: "empresa"},
		{ID: 10, Name: "admin"},
	}, roles)
}
