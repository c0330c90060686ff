package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/services"
)

// ReviewHandler defines handlers for review resources.
type ReviewHandler struct {
	Service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler with the given ReviewService.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: service}
}

// CreateReview handles POST /api/reviews.
// @Summary Review a project
// @Description Creates a rated review; multiple reviews per user and project are allowed
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body models.ReviewCreateRequest true "Review payload"
// @Success 201 {object} models.Review "Review created"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Project or user not found"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req models.ReviewCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Failed to parse review payload: %v", err)
		return badRequest(c, "invalid request body")
	}
	review, err := h.Service.CreateReview(&req)
	if err != nil {
		log.Printf("Error creating review: ProjectID=%d, UserID=%d, Error=%v", req.ProjectID, req.UserID, err)
		return respondError(c, err)
	}
	log.Printf("Successfully created review: ID=%d, ProjectID=%d, Rating=%d", review.ID, review.ProjectID, review.Rating)
	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListProjectReviews handles GET /api/reviews/project/:id.
// @Summary List a project's reviews
// @Description Lists a project's reviews, most recent first
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return (1-100)" default(10)
// @Success 200 {array} models.Review "Reviews"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Router /reviews/project/{id} [get]
func (h *ReviewHandler) ListProjectReviews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, InvalidIDError)
	}
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 10)
	if skip < 0 {
		return badRequest(c, "skip must not be negative")
	}
	if limit < 1 || limit > 100 {
		return badRequest(c, "limit must be between 1 and 100")
	}
	reviews, err := h.Service.ListReviewsForProject(uint(id), skip, limit)
	if err != nil {
		log.Printf("Error listing reviews: ProjectID=%d, Error=%v", id, err)
		return respondError(c, err)
	}
	return c.JSON(reviews)
}
