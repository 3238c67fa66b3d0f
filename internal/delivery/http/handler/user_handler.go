package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"twotier-webapp/internal/config"
	"twotier-webapp/internal/domain/entity"
	"twotier-webapp/internal/domain/repository"
	"twotier-webapp/internal/usecase"
)

type UserHandler struct {
	users  repository.UserRepository
	events *usecase.EventRecorder
	cfg    *config.Config
}

func NewUserHandler(users repository.UserRepository, events *usecase.EventRecorder, cfg *config.Config) *UserHandler {
	return &UserHandler{
		users:  users,
		events: events,
		cfg:    cfg,
	}
}

// userID parses the :id route parameter. A non-integer or non-positive id
// addresses no resource and reads as not found.
func userID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// GetUsers returns all users, newest first.
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.users.FindAll(ctx)
	if err != nil {
		_ = h.events.Record(ctx, entity.LevelError, fmt.Sprintf("Error retrieving users: %v", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	_ = h.events.Record(ctx, entity.LevelInfo, fmt.Sprintf("Retrieved %d users", len(users)))
	return c.JSON(fiber.Map{
		"users":       users,
		"count":       len(users),
		"instance_id": h.cfg.App.InstanceID,
	})
}

// CreateUser inserts a new user from the request body.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req entity.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No data provided"})
	}

	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and email are required"})
	}

	id, err := h.users.Create(ctx, req.Name, req.Email)
	if errors.Is(err, entity.ErrEmailTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	}
	if err != nil {
		_ = h.events.Record(ctx, entity.LevelError, fmt.Sprintf("Error creating user: %v", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	_ = h.events.Record(ctx, entity.LevelInfo, fmt.Sprintf("Created user: %s (%s)", req.Name, req.Email))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "User created successfully",
		"user_id":     id,
		"instance_id": h.cfg.App.InstanceID,
	})
}

// GetUser returns a single user by id.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := userID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user, err := h.users.FindByID(ctx, id)
	if errors.Is(err, entity.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		_ = h.events.Record(ctx, entity.LevelError, fmt.Sprintf("Error retrieving user %d: %v", id, err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	_ = h.events.Record(ctx, entity.LevelInfo, fmt.Sprintf("Retrieved user: %d", id))
	return c.JSON(fiber.Map{
		"user":        user,
		"instance_id": h.cfg.App.InstanceID,
	})
}

// UpdateUser overwrites a user's name and email. Fields absent from the body
// are written as empty strings; this is a full overwrite, not a patch.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := userID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req entity.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No data provided"})
	}

	err := h.users.Update(ctx, id, req.Name, req.Email)
	if errors.Is(err, entity.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if errors.Is(err, entity.ErrEmailTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	}
	if err != nil {
		_ = h.events.Record(ctx, entity.LevelError, fmt.Sprintf("Error updating user %d: %v", id, err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	_ = h.events.Record(ctx, entity.LevelInfo, fmt.Sprintf("Updated user: %d", id))
	return c.JSON(fiber.Map{
		"message":     "User updated successfully",
		"instance_id": h.cfg.App.InstanceID,
	})
}

// DeleteUser removes a user by id. Removal is a hard delete.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := userID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	err := h.users.Delete(ctx, id)
	if errors.Is(err, entity.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		_ = h.events.Record(ctx, entity.LevelError, fmt.Sprintf("Error deleting user %d: %v", id, err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	_ = h.events.Record(ctx, entity.LevelInfo, fmt.Sprintf("Deleted user: %d", id))
	return c.JSON(fiber.Map{
		"message":     "User deleted successfully",
		"instance_id": h.cfg.App.InstanceID,
	})
}
