package models

import "strconv"

// RoleID identifies a coarse permission class. The numeric values are the
// primary keys of the seeded rows in the roles table.
type RoleID uint64

const (
	RoleYouth   RoleID = 1
	RoleCompany RoleID = 2
	RoleAdmin   RoleID = 10
)

var roleNames = map[RoleID]string{
	RoleYouth:   "joven",
	RoleCompany: "empresa",
	RoleAdmin:   "admin",
}

// BuiltinRoles returns the roles every deployment starts with, in id order.
func BuiltinRoles() []Role {
	return []Role{
		{ID: RoleYouth, Name: roleNames[RoleYouth]},
		{ID: RoleCompany, Name: roleNames[RoleCompany]},
		{ID: RoleAdmin, Name: roleNames[RoleAdmin]},
	}
}

func (r RoleID) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "role(" + strconv.FormatUint(uint64(r), 10) + ")"
}

type Role struct {
	ID   RoleID `gorm:"column:id_rol;primaryKey" json:"id_rol"`
	Name string `gorm:"column:nombre_rol;type:varchar(50)" json:"nombre_rol"`
}

func (Role) TableName() string { return "roles" }
