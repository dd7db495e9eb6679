package handlers

import (
	"context"
	"errors"

	"github.com/forumx/forumx/internal/models"
	"github.com/forumx/forumx/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create inserts a new post. Vote counters start at zero no matter what
// the request body carried.
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing Post data."})
	}
	if post.Title == "" && post.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing Post data."})
	}

	created, err := h.posts.Create(c.Context(), post)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add post"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns one page of posts, sorted by recency or vote difference.
// Page size is fixed at 5; invalid page or sort values fall back to
// defaults rather than erroring.
func (h *PostHandler) List(c *fiber.Ctx) error {
	sort := c.Query("sort", "newest")
	page := int64(c.QueryInt("page", 1))

	result, err := h.posts.List(c.Context(), sort, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load posts"})
	}
	return c.JSON(result)
}

// ByAuthor returns the author's newest posts, capped (default 3).
func (h *PostHandler) ByAuthor(c *fiber.Ctx) error {
	email := c.Params("email")
	limit := int64(c.QueryInt("limit", 3))

	posts, err := h.posts.ListByAuthor(c.Context(), email, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch user posts"})
	}
	return c.JSON(posts)
}

// AllByAuthor returns every post by the author, newest first.
func (h *PostHandler) AllByAuthor(c *fiber.Ctx) error {
	posts, err := h.posts.ListAllByAuthor(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch user posts"})
	}
	return c.JSON(posts)
}

// Get fetches a single post by ID.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	post, err := h.posts.Get(c.Context(), c.Params("id"))
	switch {
	case errors.Is(err, services.ErrInvalidPostID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid post ID"})
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch post"})
	}
	return c.JSON(post)
}

// Upvote increments the post's upvote counter by one.
func (h *PostHandler) Upvote(c *fiber.Ctx) error {
	return h.vote(c, h.posts.Upvote, "Failed to upvote")
}

// Downvote increments the post's downvote counter by one.
func (h *PostHandler) Downvote(c *fiber.Ctx) error {
	return h.vote(c, h.posts.Downvote, "Failed to downvote")
}

func (h *PostHandler) vote(c *fiber.Ctx, apply func(ctx context.Context, id string) error, failMsg string) error {
	err := apply(c.Context(), c.Params("id"))
	switch {
	case errors.Is(err, services.ErrInvalidPostID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid post ID"})
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": failMsg})
	}
	return c.JSON(fiber.Map{"message": "Vote recorded"})
}
