package repository

import (
	"context"

	"github.com/yukikurage/empleo-joven-api/internal/database"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("correo = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) List(ctx context.Context, page *utils.PaginationParams) ([]models.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Scopes(database.Paginate(page)).
		Order("id_usuario").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *GormUserRepository) UpdateProfile(ctx context.Context, id uint64, fields UserProfileFields) (*models.User, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id_usuario = ?", id).
		Updates(map[string]interface{}{
			"nombre":    fields.Name,
			"correo":    fields.Email,
			"biografia": fields.Bio,
			"cv_url":    fields.ResumeURL,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &models.User{}, id)
}

// deleteByID deletes one row by primary key and reports
// gorm.ErrRecordNotFound when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id interface{}) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
