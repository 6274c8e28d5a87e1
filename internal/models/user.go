package models

import "time"

type User struct {
	ID           uint64    `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Name         string    `gorm:"column:nombre;type:varchar(100)" json:"nombre"`
	Email        string    `gorm:"column:correo;type:varchar(100);uniqueIndex;not null" json:"correo"`
	PasswordHash string    `gorm:"column:contrasena;type:text;not null" json:"-"`
	RoleID       RoleID    `gorm:"column:tipo_usuario;index" json:"tipo_usuario"`
	Bio          *string   `gorm:"column:biografia;type:text" json:"biografia"`
	ResumeURL    *string   `gorm:"column:cv_url;type:text" json:"cv_url"`
	CreatedAt    time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`

	// Relations
	Role *Role `gorm:"foreignKey:RoleID;references:ID" json:"-"`
}

func (User) TableName() string { return "usuarios" }
