package repository

import (
	"context"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id_categoria").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) Rename(ctx context.Context, id uint64, name string) (*models.Category, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id_categoria = ?", id).
		Update("nombre_categoria", name)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &models.Category{}, id)
}
