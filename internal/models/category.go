package models

type Category struct {
	ID   uint64 `gorm:"column:id_categoria;primaryKey" json:"id_categoria"`
	Name string `gorm:"column:nombre_categoria;type:varchar(50)" json:"nombre_categoria"`
}

func (Category) TableName() string { return "categorias" }
