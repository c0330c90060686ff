package services

import (
	"github.com/pkg/errors"

	"crowdfunding-service/internal/metrics"
	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// Bounds applied to project listing parameters.
const (
	defaultListLimit     = 10
	maxListLimit         = 100
	defaultFeaturedLimit = 6
	maxFeaturedLimit     = 20
)

// ProjectService implements the project read and mutation flows: filtered
// listings, creation with category lookup-or-create, sparse updates,
// free-text search and the featured selection.
type ProjectService struct {
	projects   *repository.ProjectRepository
	categories *repository.CategoryRepository
	users      *repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects *repository.ProjectRepository, categories *repository.CategoryRepository, users *repository.UserRepository) *ProjectService {
	return &ProjectService{
		projects:   projects,
		categories: categories,
		users:      users,
	}
}

// ListProjects returns projects matching the filter. Limit falls back to
// the default when unset.
func (s *ProjectService) ListProjects(filter models.ProjectFilter) ([]models.Project, error) {
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	projects, err := s.projects.ListProjects(filter)
	if err != nil {
		return nil, errors.Wrap(err, "list projects")
	}
	return projects, nil
}

// GetProject returns a single project or NotFoundError.
func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	project, err := s.projects.GetProject(id)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}
	return project, nil
}

// CreateProject validates the request and creates a project. The named
// category is created on demand when it does not exist yet; the creator
// must already be registered.
func (s *ProjectService) CreateProject(req *models.ProjectCreateRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUser(req.CreatorID); err != nil {
		return nil, notFoundOr(err, "user")
	}
	category, err := s.categories.GetOrCreateCategory(req.Category)
	if err != nil {
		return nil, errors.Wrap(err, "resolve category")
	}
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Goal:        req.Goal,
		Deadline:    req.Deadline,
		CategoryID:  category.ID,
		CreatorID:   req.CreatorID,
	}
	if err := s.projects.CreateProject(project); err != nil {
		return nil, errors.Wrap(err, "create project")
	}
	metrics.ProjectsCreated.Inc()
	return project, nil
}

// UpdateProject applies a sparse update: only fields present in the
// request change, everything else keeps its stored value. A category
// change goes through the same lookup-or-create as creation.
func (s *ProjectService) UpdateProject(id uint, req *models.ProjectUpdateRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	project, err := s.projects.GetProject(id)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ImageURL != nil {
		project.ImageURL = req.ImageURL
	}
	if req.Goal != nil {
		project.Goal = *req.Goal
	}
	if req.Deadline != nil {
		project.Deadline = *req.Deadline
	}
	if req.Category != nil {
		category, err := s.categories.GetOrCreateCategory(*req.Category)
		if err != nil {
			return nil, errors.Wrap(err, "resolve category")
		}
		project.CategoryID = category.ID
	}
	if err := s.projects.UpdateProject(project); err != nil {
		return nil, errors.Wrap(err, "update project")
	}
	// Re-read: the counters may have moved while the update was in flight.
	updated, err := s.projects.GetProject(id)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}
	return updated, nil
}

// SearchProjects returns up to 20 matching projects together with the
// true total match count.
func (s *ProjectService) SearchProjects(query string) (*models.SearchResponse, error) {
	projects, total, err := s.projects.SearchProjects(query)
	if err != nil {
		return nil, errors.Wrap(err, "search projects")
	}
	return &models.SearchResponse{
		Query:   query,
		Results: projects,
		Total:   total,
	}, nil
}

// FeaturedProjects returns the top projects by raised amount. Limit falls
// back to the default when unset and is capped at the featured maximum.
func (s *ProjectService) FeaturedProjects(limit int) ([]models.Project, error) {
	if limit == 0 {
		limit = defaultFeaturedLimit
	}
	if limit > maxFeaturedLimit {
		limit = maxFeaturedLimit
	}
	projects, err := s.projects.FeaturedProjects(limit)
	if err != nil {
		return nil, errors.Wrap(err, "featured projects")
	}
	return projects, nil
}
