package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound     = errors.New("role not found")
	ErrCategoryNotFound = errors.New("category not found")
	// ErrRoleInUse and ErrCategoryInUse are returned when rows still
	// reference the entry being deleted.
	ErrRoleInUse     = errors.New("role in use")
	ErrCategoryInUse = errors.New("category in use")
)

// CatalogService manages the admin-maintained lookup tables: roles and
// categories.
type CatalogService struct {
	roleRepo     repository.RoleRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(roleRepo repository.RoleRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		roleRepo:     roleRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogService) CreateRole(ctx context.Context, name string) (*models.Role, error) {
	role := &models.Role{Name: name}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return role, nil
}

func (s *CatalogService) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (s *CatalogService) RenameRole(ctx context.Context, id models.RoleID, name string) (*models.Role, error) {
	role, err := s.roleRepo.Rename(ctx, id, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return role, nil
}

func (s *CatalogService) DeleteRole(ctx context.Context, id models.RoleID) error {
	if err := s.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrRoleInUse
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) RenameCategory(ctx context.Context, id uint64, name string) (*models.Category, error) {
	category, err := s.categoryRepo.Rename(ctx, id, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
