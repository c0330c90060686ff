package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crowdfunding-service/internal/services"
)

// ImageHandler defines handlers for project cover images. Service is nil
// when no image storage is configured; both endpoints then report the
// feature as unavailable.
type ImageHandler struct {
	Service *services.ImageService
}

// NewImageHandler creates a new ImageHandler with the given ImageService,
// which may be nil.
func NewImageHandler(service *services.ImageService) *ImageHandler {
	return &ImageHandler{Service: service}
}

func (h *ImageHandler) disabled(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": true, "message": "image storage is disabled",
	})
}

// UploadImage handles POST /api/projects/:id/image.
// @Summary Upload a project image
// @Description Stores a cover image for the project and sets its image_url to the download route
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param file formData file true "Image file (png, jpg, jpeg, gif, webp)"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 503 {object} map[string]interface{} "Image storage disabled"
// @Router /projects/{id}/image [post]
func (h *ImageHandler) UploadImage(c *fiber.Ctx) error {
	if h.Service == nil {
		return h.disabled(c)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, InvalidIDError)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("Failed to read image file: %v", err)
		return badRequest(c, "failed to read file: "+err.Error())
	}
	log.Printf("Processing image upload for project %d: %s (%d bytes)", id, fileHeader.Filename, fileHeader.Size)

	project, err := h.Service.UploadProjectImage(c.Context(), uint(id), fileHeader)
	if err != nil {
		log.Printf("Image upload failed: ProjectID=%d, Error=%v", id, err)
		return respondError(c, err)
	}
	log.Printf("Successfully stored image for project %d", project.ID)
	return c.JSON(project)
}

// DownloadImage handles GET /api/projects/:id/image.
// @Summary Download a project image
// @Description Streams the project's stored cover image
// @Tags projects
// @Produce octet-stream
// @Param id path int true "Project ID"
// @Success 200 {file} binary "Image content"
// @Failure 404 {object} map[string]interface{} "Project or image not found"
// @Failure 503 {object} map[string]interface{} "Image storage disabled"
// @Router /projects/{id}/image [get]
func (h *ImageHandler) DownloadImage(c *fiber.Ctx) error {
	if h.Service == nil {
		return h.disabled(c)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, InvalidIDError)
	}
	reader, contentType, err := h.Service.DownloadProjectImage(c.Context(), uint(id))
	if err != nil {
		log.Printf("Image download failed: ProjectID=%d, Error=%v", id, err)
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(reader)
}
