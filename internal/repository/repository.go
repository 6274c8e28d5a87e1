package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/utils"
)

var (
	// ErrDuplicatePostulation is returned when the user already applied to
	// the opportunity.
	ErrDuplicatePostulation = errors.New("repository: postulation already exists for user and opportunity")
	// ErrNoAcceptedPostulation is returned when an experience is recorded
	// without an accepted postulation for the same user and opportunity.
	ErrNoAcceptedPostulation = errors.New("repository: no accepted postulation for user and opportunity")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// FindByID finds a user by ID with the role preloaded
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, page *utils.PaginationParams) ([]models.User, int64, error)
	// UpdateProfile overwrites the editable profile columns
	UpdateProfile(ctx context.Context, id uint64, fields UserProfileFields) (*models.User, error)
	Delete(ctx context.Context, id uint64) error
}

// UserProfileFields holds the columns a user may edit on their profile.
type UserProfileFields struct {
	Name      string
	Email     string
	Bio       *string
	ResumeURL *string
}

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	FindByID(ctx context.Context, id models.RoleID) (*models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	Rename(ctx context.Context, id models.RoleID, name string) (*models.Role, error)
	Delete(ctx context.Context, id models.RoleID) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
	Rename(ctx context.Context, id uint64, name string) (*models.Category, error)
	Delete(ctx context.Context, id uint64) error
}

// OpportunityRepository defines the interface for opportunity data access
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *models.Opportunity) error
	// FindByID finds an opportunity with its category preloaded
	FindByID(ctx context.Context, id uint64) (*models.Opportunity, error)
	// List returns opportunities newest first
	List(ctx context.Context, filter OpportunityFilter) ([]models.Opportunity, int64, error)
	Update(ctx context.Context, id uint64, fields OpportunityFields) (*models.Opportunity, error)
	Delete(ctx context.Context, id uint64) error
}

// OpportunityFilter holds filtering options for listing opportunities
type OpportunityFilter struct {
	CategoryID *uint64
	PostedBy   *uint64
	Page       *utils.PaginationParams
}

// OpportunityFields holds the editable opportunity columns.
type OpportunityFields struct {
	Title       string
	Description string
	Location    string
	CategoryID  *uint64
	StartDate   *models.Date
	EndDate     *models.Date
}

// PostulationRepository defines the interface for postulation data access
type PostulationRepository interface {
	// CreateUnique inserts the postulation unless one already exists for
	// the same user and opportunity, in which case ErrDuplicatePostulation
	// is returned.
	CreateUnique(ctx context.Context, postulation *models.Postulation) error
	// FindByID finds a postulation with its opportunity preloaded
	FindByID(ctx context.Context, id uint64) (*models.Postulation, error)
	List(ctx context.Context, filter PostulationFilter) ([]models.Postulation, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (*models.Postulation, error)
	Delete(ctx context.Context, id uint64) error
	// ListAcceptedApplicants returns users whose postulation to the
	// opportunity has a status starting with acceptedPrefix.
	ListAcceptedApplicants(ctx context.Context, opportunityID uint64, acceptedPrefix string) ([]models.User, error)
}

// PostulationFilter narrows postulation listings. Zero fields are ignored.
type PostulationFilter struct {
	UserID             *uint64
	OpportunityID      *uint64
	OpportunityOwnerID *uint64
}

// ExperienceRepository defines the interface for experience data access
type ExperienceRepository interface {
	// CreateIfAccepted inserts the experience only when an accepted
	// postulation exists for the same user and opportunity; otherwise it
	// returns ErrNoAcceptedPostulation.
	CreateIfAccepted(ctx context.Context, experience *models.Experience, acceptedPrefix string) error
	List(ctx context.Context, filter ExperienceFilter) ([]models.Experience, error)
	Delete(ctx context.Context, id uint64) error
}

// ExperienceFilter narrows experience listings. Zero fields are ignored.
type ExperienceFilter struct {
	UserID             *uint64
	OpportunityOwnerID *uint64
}

// StatsRepository runs aggregate counts.
type StatsRepository interface {
	CountUsers(ctx context.Context, role *models.RoleID) (int64, error)
	CountOpportunities(ctx context.Context, postedBy *uint64) (int64, error)
	CountPostulations(ctx context.Context, filter PostulationFilter) (int64, error)
	CountExperiences(ctx context.Context, filter ExperienceFilter) (int64, error)
}
