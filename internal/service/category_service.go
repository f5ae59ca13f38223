package service

import (
	"context"
	"strings"

	"foodieframe/internal/models"
	"foodieframe/internal/repository"
	"foodieframe/internal/validation"
)

// CategoryService provides browsing category logic.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService returns a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput carries the fields accepted when creating or updating a
// category.
type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

// CreateCategory enforces a case-insensitive unique name of 2-50 characters.
func (s *CategoryService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if !validation.ValidateNameLength(in.Name, 2, 50) {
		return nil, models.NewValidationError("Category name must be between 2 and 50 characters")
	}

	existing, err := s.categoryRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A category with this name already exists")
	}

	category := &models.Category{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetAllCategories returns every category, ordered by name.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetCategoryByID returns one category by id.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// GetCategoryByName finds a category by exact name, case-insensitive.
func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, models.NewNotFoundError("Category", name)
	}
	return category, nil
}

// SearchCategories finds categories whose name contains the term.
func (s *CategoryService) SearchCategories(ctx context.Context, query string) ([]models.Category, error) {
	return s.categoryRepo.Search(ctx, query)
}

// UpdateCategory overwrites the category, re-checking name uniqueness when
// the name changes.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	if !validation.ValidateNameLength(in.Name, 2, 50) {
		return nil, models.NewValidationError("Category name must be between 2 and 50 characters")
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(category.Name, in.Name) {
		existing, err := s.categoryRepo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("A category with this name already exists")
		}
	}

	category.Name = in.Name
	category.Description = in.Description
	category.ImageURL = in.ImageURL

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
