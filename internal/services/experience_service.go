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
	ErrExperienceNotFound    = errors.New("experience not found")
	ErrNoAcceptedPostulation = errors.New("the user has no accepted postulation for this opportunity")
)

// ExperienceService records placements that follow accepted postulations.
type ExperienceService struct {
	experienceRepo  repository.ExperienceRepository
	postulationRepo repository.PostulationRepository
	opportunityRepo repository.OpportunityRepository
}

func NewExperienceService(
	experienceRepo repository.ExperienceRepository,
	postulationRepo repository.PostulationRepository,
	opportunityRepo repository.OpportunityRepository,
) *ExperienceService {
	return &ExperienceService{
		experienceRepo:  experienceRepo,
		postulationRepo: postulationRepo,
		opportunityRepo: opportunityRepo,
	}
}

// CreateExperienceInput represents input for recording an experience
type CreateExperienceInput struct {
	UserID        uint64
	OpportunityID uint64
	Description   string
	StartDate     *models.Date
	EndDate       *models.Date
	FinalComment  *string
}

// ListForCaller returns the experiences visible to the caller.
func (s *ExperienceService) ListForCaller(ctx context.Context, caller auth.Identity) ([]models.Experience, error) {
	var filter repository.ExperienceFilter
	switch {
	case caller.IsAdmin():
	case caller.Is(models.RoleCompany):
		filter.OpportunityOwnerID = &caller.UserID
	default:
		filter.UserID = &caller.UserID
	}

	experiences, err := s.experienceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return experiences, nil
}

// CreateExperience records an experience for an applicant whose postulation
// was accepted. The opportunity must exist and belong to the caller unless
// the caller is an administrator.
func (s *ExperienceService) CreateExperience(ctx context.Context, caller auth.Identity, input CreateExperienceInput) (*models.Experience, error) {
	opportunity, err := s.opportunityRepo.FindByID(ctx, input.OpportunityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}

	if err := auth.RequireOwner(caller, opportunity.OwnerID()); err != nil {
		return nil, err
	}

	experience := &models.Experience{
		UserID:        input.UserID,
		OpportunityID: input.OpportunityID,
		Description:   input.Description,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		FinalComment:  input.FinalComment,
	}
	if err := s.experienceRepo.CreateIfAccepted(ctx, experience, constants.AcceptedStatusPrefix); err != nil {
		if errors.Is(err, repository.ErrNoAcceptedPostulation) {
			return nil, ErrNoAcceptedPostulation
		}
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return experience, nil
}

func (s *ExperienceService) DeleteExperience(ctx context.Context, id uint64) error {
	if err := s.experienceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	return nil
}

// AcceptedCandidates lists applicants accepted for the opportunity.
func (s *ExperienceService) AcceptedCandidates(ctx context.Context, opportunityID uint64) ([]models.User, error) {
	users, err := s.postulationRepo.ListAcceptedApplicants(ctx, opportunityID, constants.AcceptedStatusPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted candidates: %w", err)
	}
	return users, nil
}
