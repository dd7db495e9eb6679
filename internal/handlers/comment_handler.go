package handlers

import (
	"github.com/forumx/forumx/internal/models"
	"github.com/forumx/forumx/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Create adds a new comment with a server-side timestamp.
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid comment data"})
	}

	created, err := h.comments.Create(c.Context(), comment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add comment"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns comments, optionally filtered by postId.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	comments, err := h.comments.List(c.Context(), c.Query("postId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load comments"})
	}
	return c.JSON(comments)
}
