package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/services"
)

// PlatformHandler defines the cross-entity endpoints: search, statistics
// and the liveness probe.
type PlatformHandler struct {
	Projects *services.ProjectService
	Stats    *services.StatsService
}

// NewPlatformHandler creates a new PlatformHandler.
func NewPlatformHandler(projects *services.ProjectService, stats *services.StatsService) *PlatformHandler {
	return &PlatformHandler{Projects: projects, Stats: stats}
}

// Search handles GET /api/search.
// @Summary Search projects
// @Description Case-insensitive substring search over project titles and descriptions; results capped at 20, total reflects all matches
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Search term (at least 1 character)"
// @Success 200 {object} models.SearchResponse "Search results"
// @Failure 400 {object} map[string]interface{} "Missing search term"
// @Router /search [get]
func (h *PlatformHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return badRequest(c, "q is required")
	}
	result, err := h.Projects.SearchProjects(query)
	if err != nil {
		log.Printf("Error searching projects for %q: %v", query, err)
		return respondError(c, err)
	}
	log.Printf("Search for %q matched %d projects", query, result.Total)
	return c.JSON(result)
}

// Statistics handles GET /api/statistics.
// @Summary Platform statistics
// @Description Aggregate project/user counts and money totals
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} models.Statistics "Platform statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /statistics [get]
func (h *PlatformHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.Stats.GetStatistics()
	if err != nil {
		log.Printf("Error collecting statistics: %v", err)
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// Health handles GET /health.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router /health [get]
func (h *PlatformHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Crowdfunding backend is running",
	})
}
