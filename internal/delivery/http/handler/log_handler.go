package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"twotier-webapp/internal/config"
	"twotier-webapp/internal/domain/entity"
	"twotier-webapp/internal/domain/repository"
	"twotier-webapp/internal/usecase"
)

const defaultLogLimit = 100

type LogHandler struct {
	logs   repository.EventLogRepository
	events *usecase.EventRecorder
	cfg    *config.Config
}

func NewLogHandler(logs repository.EventLogRepository, events *usecase.EventRecorder, cfg *config.Config) *LogHandler {
	return &LogHandler{
		logs:   logs,
		events: events,
		cfg:    cfg,
	}
}

// GetLogs returns audit entries, newest first, optionally filtered by level
// and capped at limit (default 100).
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit := c.QueryInt("limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}
	level := c.Query("level")

	logs, err := h.logs.FindAll(ctx, limit, level)
	if err != nil {
		_ = h.events.Record(ctx, entity.LevelError, fmt.Sprintf("Error retrieving logs: %v", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	_ = h.events.Record(ctx, entity.LevelInfo, fmt.Sprintf("Retrieved %d log entries", len(logs)))
	return c.JSON(fiber.Map{
		"logs":        logs,
		"count":       len(logs),
		"instance_id": h.cfg.App.InstanceID,
	})
}
