package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"twotier-webapp/internal/config"
	"twotier-webapp/internal/domain/entity"
	"twotier-webapp/internal/infrastructure/database"
	"twotier-webapp/internal/usecase"
)

// StorePinger probes store reachability.
type StorePinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db     StorePinger
	events *usecase.EventRecorder
	cfg    *config.Config
}

func NewHealthHandler(db *database.Database, events *usecase.EventRecorder, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		db:     db,
		events: events,
		cfg:    cfg,
	}
}

// Health reports store reachability. The audit entry mirrors the
// determination; when the store is down the entry is necessarily lost, which
// the recorder swallows.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.db.Health(ctx); err != nil {
		_ = h.events.Record(ctx, entity.LevelError, fmt.Sprintf("Health check failed: %v", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":      "unhealthy",
			"database":    err.Error(),
			"instance_id": h.cfg.App.InstanceID,
			"timestamp":   time.Now().UTC(),
		})
	}

	_ = h.events.Record(ctx, entity.LevelInfo, "Health check passed")
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"database":    "connected",
		"instance_id": h.cfg.App.InstanceID,
		"timestamp":   time.Now().UTC(),
	})
}
