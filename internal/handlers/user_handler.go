package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/services"
)

// UserHandler defines handlers for user resources.
type UserHandler struct {
	Service *services.UserService
}

// NewUserHandler creates a new UserHandler with the given UserService.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// CreateUser handles POST /api/users.
// @Summary Register a user
// @Description Registers a user; email and username must be unique
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserCreateRequest true "User payload"
// @Success 201 {object} models.User "User created"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 409 {object} map[string]interface{} "Email or username already in use"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Failed to parse user payload: %v", err)
		return badRequest(c, "invalid request body")
	}
	user, err := h.Service.CreateUser(&req)
	if err != nil {
		log.Printf("Error creating user %q: %v", req.Username, err)
		return respondError(c, err)
	}
	log.Printf("Successfully created user: ID=%d, Username=%s", user.ID, user.Username)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /api/users/:id.
// @Summary Get a user by ID
// @Description Get details of a specific user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User found"
// @Failure 400 {object} map[string]interface{} "Invalid id"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, InvalidIDError)
	}
	user, err := h.Service.GetUser(uint(id))
	if err != nil {
		log.Printf("Error fetching user: ID=%d, Error=%v", id, err)
		return respondError(c, err)
	}
	return c.JSON(user)
}
