package repository

import (
	"context"

	"twotier-webapp/internal/domain/entity"
)

// EventLogRepository defines the append-only audit log store. There is no
// update or delete; retention is an external concern.
type EventLogRepository interface {
	Save(ctx context.Context, log *entity.EventLog) error
	FindAll(ctx context.Context, limit int, level string) ([]entity.EventLog, error)
}
