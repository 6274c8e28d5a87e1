package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields        = errors.New("required fields are missing")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUnknownRole          = errors.New("role does not exist")
	ErrEmailNotFound        = errors.New("no user with that email")
	ErrInvalidCredentials   = errors.New("invalid password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// MissingFieldsError lists the required fields absent from a request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// TokenIssuer signs identity tokens at login.
type TokenIssuer interface {
	Issue(identity auth.Identity) (string, time.Time, error)
}

// AuthService handles registration, login and the caller's own profile.
type AuthService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tokens TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// RegisterInput represents the information needed to create a user.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	RoleID    models.RoleID
	Bio       *string
	ResumeURL *string
}

// Register creates a user with a hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "nombre")
	}
	if input.Email == "" {
		missing = append(missing, "correo")
	}
	if input.Password == "" {
		missing = append(missing, "contrasena")
	}
	if input.RoleID == 0 {
		missing = append(missing, "tipo_usuario")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if _, err := s.roleRepo.FindByID(ctx, input.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRole
		}
		return nil, fmt.Errorf("failed to check role: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		RoleID:       input.RoleID,
		Bio:          input.Bio,
		ResumeURL:    input.ResumeURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrEmailNotFound
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(auth.Identity{UserID: user.ID, RoleID: user.RoleID})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToIssueToken, err)
	}

	return token, user, nil
}

// GetProfile retrieves a user by ID with the role loaded.
func (s *AuthService) GetProfile(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
