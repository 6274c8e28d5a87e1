package repository

import (
	"context"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"gorm.io/gorm"
)

// GormRoleRepository is a GORM implementation of RoleRepository
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) Create(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *GormRoleRepository) FindByID(ctx context.Context, id models.RoleID) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).First(&role, uint64(id)).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRoleRepository) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.WithContext(ctx).Order("id_rol").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormRoleRepository) Rename(ctx context.Context, id models.RoleID, name string) (*models.Role, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Role{}).
		Where("id_rol = ?", uint64(id)).
		Update("nombre_rol", name)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *GormRoleRepository) Delete(ctx context.Context, id models.RoleID) error {
	return deleteByID(ctx, r.db, &models.Role{}, uint64(id))
}
