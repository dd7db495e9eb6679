package handlers

import (
	"errors"
	"io"

	"github.com/forumx/forumx/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	images *services.ImageService
}

func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload validates the attachment and forwards it to the image host.
// Validation failures never reach the host.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image uploaded"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.images.Validate(contentType, fileHeader.Size); err != nil {
		return imageError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read image"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read image"})
	}

	url, err := h.images.Upload(c.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		return imageError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "url": url})
}

func imageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnsupportedImageType):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": "Unsupported file type"})
	case errors.Is(err, services.ErrImageTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "File exceeds 5MB limit"})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "error": "Image host upload failed"})
	}
}
