package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/services"
)

// CategoryHandler defines handlers for category resources.
type CategoryHandler struct {
	Service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler with the given CategoryService.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{Service: service}
}

// ListCategories handles GET /api/categories.
// @Summary List categories
// @Description Lists all categories
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} models.Category "All categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Service.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategory handles POST /api/categories. The name arrives as a
// query parameter, not a body field.
// @Summary Create a category
// @Description Creates a category; the name is passed as a query parameter
// @Tags categories
// @Accept json
// @Produce json
// @Param name query string true "Category name"
// @Success 201 {object} models.Category "Category created"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	name := c.Query("name")
	category, err := h.Service.CreateCategory(name)
	if err != nil {
		log.Printf("Error creating category %q: %v", name, err)
		return respondError(c, err)
	}
	log.Printf("Successfully created category: ID=%d, Name=%s", category.ID, category.Name)
	return c.Status(fiber.StatusCreated).JSON(category)
}
