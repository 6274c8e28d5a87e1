package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/utils"
	"gorm.io/gorm"
)

// UserService provides account administration.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all users and the unpaginated total.
func (s *UserService) ListUsers(ctx context.Context, page *utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdateProfile overwrites the editable profile fields of user id.
func (s *UserService) UpdateProfile(ctx context.Context, id uint64, fields repository.UserProfileFields) (*models.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrEmailTaken
		default:
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
