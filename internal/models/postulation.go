package models

import "time"

// Postulation is a youth user's application to an opportunity. Status is
// free text; nothing restricts transitions between values.
type Postulation struct {
	ID            uint64    `gorm:"column:id_postulacion;primaryKey" json:"id_postulacion"`
	UserID        uint64    `gorm:"column:id_usuario;uniqueIndex:idx_postulaciones_usuario_oportunidad" json:"id_usuario"`
	OpportunityID uint64    `gorm:"column:id_oportunidad;uniqueIndex:idx_postulaciones_usuario_oportunidad;index" json:"id_oportunidad"`
	AppliedAt     time.Time `gorm:"column:fecha_postulacion;autoCreateTime" json:"fecha_postulacion"`
	Status        string    `gorm:"column:estado;type:varchar(20);default:'pendiente'" json:"estado"`
	Message       *string   `gorm:"column:mensaje;type:text" json:"mensaje"`

	// Relations
	User        *User        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Opportunity *Opportunity `gorm:"foreignKey:OpportunityID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Postulation) TableName() string { return "postulaciones" }
