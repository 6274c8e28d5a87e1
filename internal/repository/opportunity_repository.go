package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/empleo-joven-api/internal/database"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"gorm.io/gorm"
)

// GormOpportunityRepository is a GORM implementation of OpportunityRepository
type GormOpportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &GormOpportunityRepository{db: db}
}

func (r *GormOpportunityRepository) Create(ctx context.Context, opportunity *models.Opportunity) error {
	if err := r.db.WithContext(ctx).Create(opportunity).Error; err != nil {
		return err
	}
	return r.loadCategory(ctx, opportunity)
}

func (r *GormOpportunityRepository) FindByID(ctx context.Context, id uint64) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	if err := r.db.WithContext(ctx).Preload("Category").First(&opportunity, id).Error; err != nil {
		return nil, err
	}
	return &opportunity, nil
}

func (r *GormOpportunityRepository) List(ctx context.Context, filter OpportunityFilter) ([]models.Opportunity, int64, error) {
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.Opportunity{})
		if filter.CategoryID != nil {
			query = query.Where("tipo_categoria = ?", *filter.CategoryID)
		}
		if filter.PostedBy != nil {
			query = query.Where("publicada_por = ?", *filter.PostedBy)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var opportunities []models.Opportunity
	if err := filtered().
		Preload("Category").
		Scopes(
			database.NewestFirst("fecha_publicacion", "id_oportunidad"),
			database.Paginate(filter.Page),
		).
		Find(&opportunities).Error; err != nil {
		return nil, 0, err
	}
	return opportunities, total, nil
}

func (r *GormOpportunityRepository) Update(ctx context.Context, id uint64, fields OpportunityFields) (*models.Opportunity, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Opportunity{}).
		Where("id_oportunidad = ?", id).
		Updates(map[string]interface{}{
			"titulo":         fields.Title,
			"descripcion":    fields.Description,
			"ubicacion":      fields.Location,
			"tipo_categoria": fields.CategoryID,
			"fecha_inicio":   fields.StartDate,
			"fecha_fin":      fields.EndDate,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *GormOpportunityRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &models.Opportunity{}, id)
}

func (r *GormOpportunityRepository) loadCategory(ctx context.Context, opportunity *models.Opportunity) error {
	if opportunity.CategoryID == nil {
		return nil
	}
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, *opportunity.CategoryID).Error
	switch {
	case err == nil:
		opportunity.Category = &category
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
