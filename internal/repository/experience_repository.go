package repository

import (
	"context"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"gorm.io/gorm"
)

// GormExperienceRepository is a GORM implementation of ExperienceRepository
type GormExperienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &GormExperienceRepository{db: db}
}

// CreateIfAccepted runs the precondition and the insert in one transaction.
func (r *GormExperienceRepository) CreateIfAccepted(ctx context.Context, experience *models.Experience, acceptedPrefix string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accepted int64
		if err := tx.Model(&models.Postulation{}).
			Where("id_usuario = ? AND id_oportunidad = ?", experience.UserID, experience.OpportunityID).
			Scopes(statusHasPrefix(acceptedPrefix)).
			Count(&accepted).Error; err != nil {
			return err
		}
		if accepted == 0 {
			return ErrNoAcceptedPostulation
		}
		return tx.Create(experience).Error
	})
}

func (r *GormExperienceRepository) List(ctx context.Context, filter ExperienceFilter) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := applyExperienceFilter(r.db.WithContext(ctx).Model(&models.Experience{}), r.db, filter).
		Preload("User").
		Preload("Opportunity").
		Order("id_experiencia DESC").
		Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *GormExperienceRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &models.Experience{}, id)
}

func applyExperienceFilter(query, db *gorm.DB, filter ExperienceFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("id_usuario = ?", *filter.UserID)
	}
	if filter.OpportunityOwnerID != nil {
		query = query.Where("id_oportunidad IN (?)", opportunitiesPostedBy(db, *filter.OpportunityOwnerID))
	}
	return query
}
