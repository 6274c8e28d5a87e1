package models

// Experience records a placement that followed an accepted postulation.
type Experience struct {
	ID            uint64  `gorm:"column:id_experiencia;primaryKey" json:"id_experiencia"`
	UserID        uint64  `gorm:"column:id_usuario;index" json:"id_usuario"`
	OpportunityID uint64  `gorm:"column:id_oportunidad;index" json:"id_oportunidad"`
	Description   string  `gorm:"column:descripcion;type:text" json:"descripcion"`
	StartDate     *Date   `gorm:"column:fecha_inicio;type:date" json:"fecha_inicio"`
	EndDate       *Date   `gorm:"column:fecha_fin;type:date" json:"fecha_fin"`
	FinalComment  *string `gorm:"column:comentario_final;type:text" json:"comentario_final"`

	// Relations
	User        *User        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Opportunity *Opportunity `gorm:"foreignKey:OpportunityID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Experience) TableName() string { return "experiencias" }
