package services

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crowdfunding-service/internal/apperrors"
	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// CategoryService implements explicit category management. Categories are
// also created implicitly by project writes; this path is for the
// dedicated endpoint, which rejects duplicates instead.
type CategoryService struct {
	categories *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListCategories returns all categories, unordered.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.categories.ListCategories()
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

// CreateCategory creates a category, rejecting duplicates with a
// ConflictError.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	if name == "" || utf8.RuneCountInString(name) > 50 {
		return nil, apperrors.Validationf("name must be between 1 and 50 characters")
	}
	if _, err := s.categories.GetCategoryByName(name); err == nil {
		return nil, apperrors.Conflictf("category already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "check category")
	}
	category := &models.Category{Name: name}
	if err := s.categories.CreateCategory(category); err != nil {
		return nil, errors.Wrap(err, "create category")
	}
	return category, nil
}
