package repository

import (
	"strings"

	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
)

// Valid sort orders for project listings.
const (
	SortPopular = "popular"
	SortNew     = "new"
	SortEnding  = "ending"
)

// Cap on the number of projects a free-text search returns.
const searchResultCap = 20

// ProjectRepository provides methods to interact with the Project model in the database.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateProject creates a new Project in the database.
func (r *ProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProject retrieves a Project by its ID from the database.
func (r *ProjectRepository) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// UpdateProject persists a Project's mutable columns. The denormalized
// raised_amount and backers_count are never written here: a pledge that
// commits between loading the project and writing it back must keep its
// increments.
func (r *ProjectRepository) UpdateProject(project *models.Project) error {
	return r.db.Model(project).
		Select("title", "description", "image_url", "image_key", "goal", "deadline", "category_id", "updated_at").
		Updates(project).Error
}

// ListProjects retrieves Projects matching the filter, sorted and paginated.
// An empty result is not an error.
func (r *ProjectRepository) ListProjects(filter models.ProjectFilter) ([]models.Project, error) {
	q := r.db.Model(&models.Project{})
	if filter.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = projects.category_id").
			Where("categories.name = ?", filter.Category)
	}
	if filter.Search != "" {
		q = searchClause(q, filter.Search)
	}
	switch filter.SortBy {
	case SortNew:
		q = q.Order("projects.created_at DESC")
	case SortEnding:
		q = q.Order("projects.deadline ASC")
	default:
		q = q.Order("projects.backers_count DESC")
	}
	projects := []models.Project{}
	err := q.Offset(filter.Skip).Limit(filter.Limit).Find(&projects).Error
	return projects, err
}

// SearchProjects retrieves Projects whose title or description contains the
// term, capped at 20 results, along with the true total match count.
func (r *ProjectRepository) SearchProjects(term string) ([]models.Project, int64, error) {
	var total int64
	if err := searchClause(r.db.Model(&models.Project{}), term).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	projects := []models.Project{}
	err := searchClause(r.db.Model(&models.Project{}), term).
		Limit(searchResultCap).Find(&projects).Error
	return projects, total, err
}

// FeaturedProjects retrieves the top Projects by raised amount.
func (r *ProjectRepository) FeaturedProjects(limit int) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.Order("raised_amount DESC").Limit(limit).Find(&projects).Error
	return projects, err
}

// searchClause restricts a project query to case-insensitive substring
// matches on title or description.
func searchClause(q *gorm.DB, term string) *gorm.DB {
	pattern := "%" + strings.ToLower(term) + "%"
	return q.Where("LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ?", pattern, pattern)
}
