package usecase

import (
	"context"

	"go.uber.org/zap"

	"twotier-webapp/internal/config"
	"twotier-webapp/internal/domain/entity"
	"twotier-webapp/internal/domain/repository"
)

// EventRecorder writes audit events to the logs table. Writes are best
// effort: a failure is reported on the diagnostic logger and returned, and
// callers are expected to discard it so an audit failure never fails the
// request being handled.
type EventRecorder struct {
	logs       repository.EventLogRepository
	instanceID string
	logger     *zap.Logger
}

func NewEventRecorder(logs repository.EventLogRepository, cfg *config.Config, logger *zap.Logger) *EventRecorder {
	return &EventRecorder{
		logs:       logs,
		instanceID: cfg.App.InstanceID,
		logger:     logger,
	}
}

// Record inserts one audit entry tagged with this process instance.
func (r *EventRecorder) Record(ctx context.Context, level, message string) error {
	err := r.logs.Save(ctx, &entity.EventLog{
		Level:      level,
		Message:    message,
		InstanceID: r.instanceID,
	})
	if err != nil {
		r.logger.Error("Failed to record audit event",
			zap.String("level", level),
			zap.String("message", message),
			zap.Error(err),
		)
		return err
	}

	return nil
}
