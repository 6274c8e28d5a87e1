package models

import "time"

type Opportunity struct {
	ID          uint64    `gorm:"column:id_oportunidad;primaryKey" json:"id_oportunidad"`
	Title       string    `gorm:"column:titulo;type:varchar(100)" json:"titulo"`
	Description string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	Location    string    `gorm:"column:ubicacion;type:varchar(100)" json:"ubicacion"`
	CategoryID  *uint64   `gorm:"column:tipo_categoria;index" json:"tipo_categoria"`
	StartDate   *Date     `gorm:"column:fecha_inicio;type:date" json:"fecha_inicio"`
	EndDate     *Date     `gorm:"column:fecha_fin;type:date" json:"fecha_fin"`
	PostedBy    uint64    `gorm:"column:publicada_por;not null;index" json:"publicada_por"`
	PublishedAt time.Time `gorm:"column:fecha_publicacion;autoCreateTime;index" json:"fecha_publicacion"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
	Poster   *User     `gorm:"foreignKey:PostedBy;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Opportunity) TableName() string { return "oportunidades" }

// OwnerID returns the user that published the opportunity.
func (o Opportunity) OwnerID() uint64 { return o.PostedBy }
