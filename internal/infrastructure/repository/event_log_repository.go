package repository

import (
	"context"
	"fmt"

	"twotier-webapp/internal/domain/entity"
	"twotier-webapp/internal/domain/repository"
	"twotier-webapp/internal/infrastructure/database"
)

type eventLogRepository struct {
	db *database.Database
}

// NewEventLogRepository creates the append-only audit log repository
func NewEventLogRepository(db *database.Database) repository.EventLogRepository {
	return &eventLogRepository{
		db: db,
	}
}

// Save inserts one audit record. Insert only; the logs table has no write
// path for updates or deletes.
func (r *eventLogRepository) Save(ctx context.Context, log *entity.EventLog) error {
	query := `
		INSERT INTO logs (level, message, instance_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.DB.ExecContext(ctx, query,
		log.Level,
		log.Message,
		log.InstanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to save event log: %w", err)
	}

	return nil
}

// FindAll returns the newest entries first, capped at limit, optionally
// filtered by exact level match.
func (r *eventLogRepository) FindAll(ctx context.Context, limit int, level string) ([]entity.EventLog, error) {
	var query string
	var args []interface{}

	if level != "" {
		query = `
			SELECT id, level, message, instance_id, created_at
			FROM logs
			WHERE level = $1
			ORDER BY created_at DESC
			LIMIT $2
		`
		args = []interface{}{level, limit}
	} else {
		query = `
			SELECT id, level, message, instance_id, created_at
			FROM logs
			ORDER BY created_at DESC
			LIMIT $1
		`
		args = []interface{}{limit}
	}

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	logs := make([]entity.EventLog, 0)
	for rows.Next() {
		var log entity.EventLog
		if err := rows.Scan(
			&log.ID,
			&log.Level,
			&log.Message,
			&log.InstanceID,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logs: %w", err)
	}

	return logs, nil
}
