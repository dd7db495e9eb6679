package handlers

import (
	"errors"

	"github.com/forumx/forumx/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns all users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load users"})
	}
	return c.JSON(users)
}

// GetByEmail fetches one user; a missing user is a real 404.
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.users.GetByEmail(c.Context(), c.Params("email"))
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found!"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch user data"})
	}
	return c.JSON(user)
}

// Register creates a new user with the default badge.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if in.Name == "" || in.Email == "" || in.Password == "" || in.PhotoURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	user, err := h.users.Register(c.Context(), in)
	if errors.Is(err, services.ErrEmailTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User already exist"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register user"})
	}

	return c.JSON(fiber.Map{"message": "User registered successfully", "user": user})
}

// Login verifies credentials and returns a signed token.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	token, err := h.users.Login(c.Context(), request.Email, request.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log in"})
	}

	return c.JSON(fiber.Map{"token": token})
}
