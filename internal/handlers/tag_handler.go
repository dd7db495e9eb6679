package handlers

import (
	"errors"

	"github.com/forumx/forumx/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TagHandler struct {
	tags *services.TagService
}

func NewTagHandler(tags *services.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

// Create batch-inserts tags from a list of names.
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var request struct {
		Tags []string `json:"tags"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid tag data"})
	}

	tags, err := h.tags.CreateBatch(c.Context(), request.Tags)
	if errors.Is(err, services.ErrNoTags) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No tags provided"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add tags"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Tags added successfully", "tags": tags})
}

// List returns all tags.
func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.tags.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load tags"})
	}
	return c.JSON(tags)
}
