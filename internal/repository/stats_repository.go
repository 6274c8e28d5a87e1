package repository

import (
	"context"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"gorm.io/gorm"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// CountUsers counts users, optionally only those holding role.
func (r *GormStatsRepository) CountUsers(ctx context.Context, role *models.RoleID) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})
	if role != nil {
		query = query.Where("tipo_usuario = ?", uint64(*role))
	}
	return count(query)
}

// CountOpportunities counts opportunities, optionally only postedBy's.
func (r *GormStatsRepository) CountOpportunities(ctx context.Context, postedBy *uint64) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Opportunity{})
	if postedBy != nil {
		query = query.Where("publicada_por = ?", *postedBy)
	}
	return count(query)
}

func (r *GormStatsRepository) CountPostulations(ctx context.Context, filter PostulationFilter) (int64, error) {
	return count(applyPostulationFilter(r.db.WithContext(ctx).Model(&models.Postulation{}), r.db, filter))
}

func (r *GormStatsRepository) CountExperiences(ctx context.Context, filter ExperienceFilter) (int64, error) {
	return count(applyExperienceFilter(r.db.WithContext(ctx).Model(&models.Experience{}), r.db, filter))
}

func count(query *gorm.DB) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
