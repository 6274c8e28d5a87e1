package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/constants"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPostulationNotFound  = errors.New("postulation not found")
	ErrDuplicatePostulation = errors.New("user already applied to this opportunity")
)

// PostulationService handles applications to opportunities.
type PostulationService struct {
	postulationRepo repository.PostulationRepository
}

func NewPostulationService(postulationRepo repository.PostulationRepository) *PostulationService {
	return &PostulationService{postulationRepo: postulationRepo}
}

// ListForCaller returns the postulations visible to the caller: youth see
// their own, companies those sent to their opportunities, admins all.
func (s *PostulationService) ListForCaller(ctx context.Context, caller auth.Identity) ([]models.Postulation, error) {
	var filter repository.PostulationFilter
	switch caller.RoleID {
	case models.RoleYouth:
		filter.UserID = &caller.UserID
	case models.RoleCompany:
		filter.OpportunityOwnerID = &caller.UserID
	case models.RoleAdmin:
	default:
		return nil, auth.ErrRoleNotAllowed
	}

	postulations, err := s.postulationRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list postulations: %w", err)
	}
	return postulations, nil
}

// ListForOpportunity returns every postulation to the opportunity.
func (s *PostulationService) ListForOpportunity(ctx context.Context, opportunityID uint64) ([]models.Postulation, error) {
	postulations, err := s.postulationRepo.List(ctx, repository.PostulationFilter{OpportunityID: &opportunityID})
	if err != nil {
		return nil, fmt.Errorf("failed to list postulations for opportunity: %w", err)
	}
	return postulations, nil
}

// Apply records the applicant's interest in an opportunity. A second
// application for the same pair fails with ErrDuplicatePostulation.
func (s *PostulationService) Apply(ctx context.Context, applicant auth.Identity, opportunityID uint64, message *string) (*models.Postulation, error) {
	postulation := &models.Postulation{
		UserID:        applicant.UserID,
		OpportunityID: opportunityID,
		Status:        constants.DefaultPostulationStatus,
		Message:       message,
	}
	if err := s.postulationRepo.CreateUnique(ctx, postulation); err != nil {
		if errors.Is(err, repository.ErrDuplicatePostulation) {
			return nil, ErrDuplicatePostulation
		}
		return nil, fmt.Errorf("failed to create postulation: %w", err)
	}
	return postulation, nil
}

// SetStatus stores status verbatim. Any value is accepted.
func (s *PostulationService) SetStatus(ctx context.Context, id uint64, status string) (*models.Postulation, error) {
	postulation, err := s.postulationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostulationNotFound
		}
		return nil, fmt.Errorf("failed to update postulation: %w", err)
	}
	return postulation, nil
}

func (s *PostulationService) Withdraw(ctx context.Context, id uint64) error {
	if err := s.postulationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostulationNotFound
		}
		return fmt.Errorf("failed to delete postulation: %w", err)
	}
	return nil
}

// ApplicantOf returns the user that sent postulation id.
func (s *PostulationService) ApplicantOf(ctx context.Context, id uint64) (uint64, bool, error) {
	postulation, found, err := s.find(ctx, id)
	if err != nil || !found {
		return 0, found, err
	}
	return postulation.UserID, true, nil
}

// ReviewerOf returns the publisher of the opportunity postulation id targets;
// that user decides on the postulation's status.
func (s *PostulationService) ReviewerOf(ctx context.Context, id uint64) (uint64, bool, error) {
	postulation, found, err := s.find(ctx, id)
	if err != nil || !found {
		return 0, found, err
	}
	if postulation.Opportunity == nil {
		return 0, false, nil
	}
	return postulation.Opportunity.OwnerID(), true, nil
}

func (s *PostulationService) find(ctx context.Context, id uint64) (*models.Postulation, bool, error) {
	postulation, err := s.postulationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find postulation: %w", err)
	}
	return postulation, true, nil
}
