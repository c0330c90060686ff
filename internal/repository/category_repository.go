package repository

import (
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
)

// CategoryRepository provides methods to interact with the Category model in the database.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository instance with the provided GORM database connection.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CreateCategory creates a new Category in the database.
func (r *CategoryRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetCategoryByName retrieves a Category by its unique name.
func (r *CategoryRepository) GetCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "name = ?", name).Error
	return &category, err
}

// GetOrCreateCategory retrieves a Category by name, creating it first when
// no such category exists yet.
func (r *CategoryRepository) GetOrCreateCategory(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", name).
		FirstOrCreate(&category, models.Category{Name: name}).Error
	return &category, err
}

// ListCategories retrieves all Categories from the database.
func (r *CategoryRepository) ListCategories() ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.Find(&categories).Error
	return categories, err
}
