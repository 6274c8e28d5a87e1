package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/empleo-joven-api/internal/utils"
)

// Paginate limits a query to one page. A nil params leaves it unbounded.
func Paginate(params *utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params == nil {
			return db
		}
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// NewestFirst orders by column descending, breaking ties on tiebreak so
// rows created within the same clock tick keep a stable order.
func NewestFirst(column, tiebreak string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " DESC").Order(tiebreak + " DESC")
	}
}
