package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"twotier-webapp/internal/config"
)

// InfoHandler serves the static metadata endpoints. Neither touches the
// store and neither writes an audit entry.
type InfoHandler struct {
	cfg *config.Config
}

func NewInfoHandler(cfg *config.Config) *InfoHandler {
	return &InfoHandler{cfg: cfg}
}

func (h *InfoHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":       "Welcome to Two-Tier Web Application",
		"status":        "healthy",
		"instance_id":   h.cfg.App.InstanceID,
		"timestamp":     time.Now().UTC(),
		"database_host": h.cfg.Database.Host,
	})
}

func (h *InfoHandler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"application":   h.cfg.App.Name,
		"version":       config.Version,
		"instance_id":   h.cfg.App.InstanceID,
		"database_host": h.cfg.Database.Host,
		"database_name": h.cfg.Database.DBName,
		"timestamp":     time.Now().UTC(),
	})
}
