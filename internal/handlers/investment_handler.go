package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/services"
)

// InvestmentHandler defines handlers for investment resources.
type InvestmentHandler struct {
	Service *services.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler with the given InvestmentService.
func NewInvestmentHandler(service *services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{Service: service}
}

// CreateInvestment handles POST /api/investments.
// @Summary Invest in a project
// @Description Creates a pledge and atomically bumps the project's raised amount and backer count
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body models.InvestmentCreateRequest true "Investment payload"
// @Success 201 {object} models.Investment "Investment created"
// @Failure 400 {object} map[string]interface{} "Validation failure or project already closed"
// @Failure 404 {object} map[string]interface{} "Project or user not found"
// @Router /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *fiber.Ctx) error {
	var req models.InvestmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Failed to parse investment payload: %v", err)
		return badRequest(c, "invalid request body")
	}
	investment, err := h.Service.CreateInvestment(&req)
	if err != nil {
		log.Printf("Error creating investment: ProjectID=%d, UserID=%d, Error=%v", req.ProjectID, req.UserID, err)
		return respondError(c, err)
	}
	log.Printf("Successfully created investment: ID=%d, ProjectID=%d, Amount=%.2f", investment.ID, investment.ProjectID, investment.Amount)
	return c.Status(fiber.StatusCreated).JSON(investment)
}

// ListProjectInvestments handles GET /api/investments/project/:id.
// @Summary List a project's investments
// @Description Lists a project's pledges in insertion order
// @Tags investments
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return (1-100)" default(10)
// @Success 200 {array} models.Investment "Investments"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Router /investments/project/{id} [get]
func (h *InvestmentHandler) ListProjectInvestments(c *fiber.Ctx) error {
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
	investments, err := h.Service.ListInvestmentsForProject(uint(id), skip, limit)
	if err != nil {
		log.Printf("Error listing investments: ProjectID=%d, Error=%v", id, err)
		return respondError(c, err)
	}
	return c.JSON(investments)
}
