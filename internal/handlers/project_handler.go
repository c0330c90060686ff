package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
	"crowdfunding-service/internal/services"
)

// ProjectHandler defines handlers for project resources.
type ProjectHandler struct {
	Service *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given ProjectService.
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

func validSortBy(sortBy string) bool {
	switch sortBy {
	case "", repository.SortPopular, repository.SortNew, repository.SortEnding:
		return true
	}
	return false
}

// ListProjects handles GET /api/projects with filtering, sorting and pagination.
// @Summary List projects
// @Description Lists projects with optional category filter, free-text search, sorting and offset pagination
// @Tags projects
// @Accept json
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return (1-100)" default(10)
// @Param category query string false "Exact category name"
// @Param search query string false "Case-insensitive substring over title and description"
// @Param sort_by query string false "popular | new | ending" default(popular)
// @Success 200 {array} models.Project "Matching projects"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 10)
	sortBy := c.Query("sort_by", repository.SortPopular)
	if skip < 0 {
		return badRequest(c, "skip must not be negative")
	}
	if limit < 1 || limit > 100 {
		return badRequest(c, "limit must be between 1 and 100")
	}
	if !validSortBy(sortBy) {
		return badRequest(c, "sort_by must be one of popular, new, ending")
	}
	filter := models.ProjectFilter{
		Skip:     skip,
		Limit:    limit,
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   sortBy,
	}
	projects, err := h.Service.ListProjects(filter)
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return respondError(c, err)
	}
	return c.JSON(projects)
}

// GetProject handles GET /api/projects/:id.
// @Summary Get a project by ID
// @Description Get details of a specific project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Project found"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, InvalidIDError)
	}
	project, err := h.Service.GetProject(uint(id))
	if err != nil {
		log.Printf("Error fetching project: ID=%d, Error=%v", id, err)
		return respondError(c, err)
	}
	return c.JSON(project)
}

// CreateProject handles POST /api/projects.
// @Summary Create a project
// @Description Creates a fundraising project; the named category is created on demand
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.ProjectCreateRequest true "Project payload"
// @Success 201 {object} models.Project "Project created"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Creator not found"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req models.ProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Failed to parse project payload: %v", err)
		return badRequest(c, "invalid request body")
	}
	project, err := h.Service.CreateProject(&req)
	if err != nil {
		log.Printf("Error creating project %q: %v", req.Title, err)
		return respondError(c, err)
	}
	log.Printf("Successfully created project: ID=%d, Title=%s", project.ID, project.Title)
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /api/projects/:id with sparse update semantics.
// @Summary Update a project
// @Description Applies a partial update; absent fields keep their stored values
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body models.ProjectUpdateRequest true "Fields to change"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, InvalidIDError)
	}
	var req models.ProjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Failed to parse project update payload: %v", err)
		return badRequest(c, "invalid request body")
	}
	project, err := h.Service.UpdateProject(uint(id), &req)
	if err != nil {
		log.Printf("Error updating project: ID=%d, Error=%v", id, err)
		return respondError(c, err)
	}
	log.Printf("Successfully updated project: ID=%d", project.ID)
	return c.JSON(project)
}

// FeaturedProjects handles GET /api/featured-projects.
// @Summary Featured projects
// @Description Top projects by raised amount
// @Tags projects
// @Accept json
// @Produce json
// @Param limit query int false "Max rows to return (1-20)" default(6)
// @Success 200 {array} models.Project "Featured projects"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Router /featured-projects [get]
func (h *ProjectHandler) FeaturedProjects(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 6)
	if limit < 1 || limit > 20 {
		return badRequest(c, "limit must be between 1 and 20")
	}
	projects, err := h.Service.FeaturedProjects(limit)
	if err != nil {
		log.Printf("Error listing featured projects: %v", err)
		return respondError(c, err)
	}
	return c.JSON(projects)
}
