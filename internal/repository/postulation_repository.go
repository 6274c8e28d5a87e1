package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"gorm.io/gorm"
)

// GormPostulationRepository is a GORM implementation of PostulationRepository
type GormPostulationRepository struct {
	db *gorm.DB
}

// NewPostulationRepository creates a new PostulationRepository
func NewPostulationRepository(db *gorm.DB) PostulationRepository {
	return &GormPostulationRepository{db: db}
}

// CreateUnique checks for an existing postulation and inserts inside one
// transaction. The unique index on (id_usuario, id_oportunidad) turns a
// concurrent duplicate into ErrDuplicatePostulation as well.
func (r *GormPostulationRepository) CreateUnique(ctx context.Context, postulation *models.Postulation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Postulation{}).
			Where("id_usuario = ? AND id_oportunidad = ?", postulation.UserID, postulation.OpportunityID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicatePostulation
		}
		return tx.Create(postulation).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePostulation
	}
	return err
}

func (r *GormPostulationRepository) FindByID(ctx context.Context, id uint64) (*models.Postulation, error) {
	var postulation models.Postulation
	if err := r.db.WithContext(ctx).Preload("Opportunity").First(&postulation, id).Error; err != nil {
		return nil, err
	}
	return &postulation, nil
}

func (r *GormPostulationRepository) List(ctx context.Context, filter PostulationFilter) ([]models.Postulation, error) {
	var postulations []models.Postulation
	if err := r.filtered(ctx, filter).
		Preload("Opportunity").
		Preload("User").
		Order("fecha_postulacion DESC").
		Order("id_postulacion DESC").
		Find(&postulations).Error; err != nil {
		return nil, err
	}
	return postulations, nil
}

func (r *GormPostulationRepository) UpdateStatus(ctx context.Context, id uint64, status string) (*models.Postulation, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Postulation{}).
		Where("id_postulacion = ?", id).
		Update("estado", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var postulation models.Postulation
	if err := r.db.WithContext(ctx).First(&postulation, id).Error; err != nil {
		return nil, err
	}
	return &postulation, nil
}

func (r *GormPostulationRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &models.Postulation{}, id)
}

func (r *GormPostulationRepository) ListAcceptedApplicants(ctx context.Context, opportunityID uint64, acceptedPrefix string) ([]models.User, error) {
	applicants := r.db.Model(&models.Postulation{}).
		Select("id_usuario").
		Where("id_oportunidad = ?", opportunityID).
		Scopes(statusHasPrefix(acceptedPrefix))

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("id_usuario IN (?)", applicants).
		Order("id_usuario").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormPostulationRepository) filtered(ctx context.Context, filter PostulationFilter) *gorm.DB {
	return applyPostulationFilter(r.db.WithContext(ctx).Model(&models.Postulation{}), r.db, filter)
}

func applyPostulationFilter(query, db *gorm.DB, filter PostulationFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("id_usuario = ?", *filter.UserID)
	}
	if filter.OpportunityID != nil {
		query = query.Where("id_oportunidad = ?", *filter.OpportunityID)
	}
	if filter.OpportunityOwnerID != nil {
		query = query.Where("id_oportunidad IN (?)", opportunitiesPostedBy(db, *filter.OpportunityOwnerID))
	}
	return query
}

// opportunitiesPostedBy is a subquery selecting the ids of ownerID's
// opportunities.
func opportunitiesPostedBy(db *gorm.DB, ownerID uint64) *gorm.DB {
	return db.Model(&models.Opportunity{}).
		Select("id_oportunidad").
		Where("publicada_por = ?", ownerID)
}

// statusHasPrefix matches postulation statuses starting with prefix,
// ignoring case.
func statusHasPrefix(prefix string) func(db *gorm.DB) *gorm.DB {
	pattern := strings.ToLower(prefix) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(estado) LIKE ?", pattern)
	}
}
