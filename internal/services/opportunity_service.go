package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"gorm.io/gorm"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

// OpportunityService handles publishing and maintaining opportunities.
type OpportunityService struct {
	opportunityRepo repository.OpportunityRepository
}

func NewOpportunityService(opportunityRepo repository.OpportunityRepository) *OpportunityService {
	return &OpportunityService{opportunityRepo: opportunityRepo}
}

// CreateOpportunity publishes an opportunity on behalf of the caller.
func (s *OpportunityService) CreateOpportunity(ctx context.Context, publisher auth.Identity, fields repository.OpportunityFields) (*models.Opportunity, error) {
	opportunity := &models.Opportunity{
		Title:       fields.Title,
		Description: fields.Description,
		Location:    fields.Location,
		CategoryID:  fields.CategoryID,
		StartDate:   fields.StartDate,
		EndDate:     fields.EndDate,
		PostedBy:    publisher.UserID,
	}
	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}
	return opportunity, nil
}

func (s *OpportunityService) GetOpportunity(ctx context.Context, id uint64) (*models.Opportunity, error) {
	opportunity, err := s.opportunityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}
	return opportunity, nil
}

// ListOpportunities returns opportunities newest first with the total
// matching the filter.
func (s *OpportunityService) ListOpportunities(ctx context.Context, filter repository.OpportunityFilter) ([]models.Opportunity, int64, error) {
	opportunities, total, err := s.opportunityRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list opportunities: %w", err)
	}
	return opportunities, total, nil
}

// UpdateOpportunity overwrites the editable fields. Ownership is checked by
// the caller before reaching here.
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, id uint64, fields repository.OpportunityFields) (*models.Opportunity, error) {
	opportunity, err := s.opportunityRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}
	return opportunity, nil
}

func (s *OpportunityService) DeleteOpportunity(ctx context.Context, id uint64) error {
	if err := s.opportunityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOpportunityNotFound
		}
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	return nil
}

// PublisherOf returns the user that posted opportunity id.
func (s *OpportunityService) PublisherOf(ctx context.Context, id uint64) (uint64, bool, error) {
	opportunity, err := s.GetOpportunity(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOpportunityNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return opportunity.OwnerID(), true, nil
}
