package entity

import "time"

// Event severity tags stored in the logs table.
const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
)

// EventLog represents one append-only audit record. Entries are written by
// the application itself and never updated or deleted.
type EventLog struct {
	ID         int64     `json:"id" db:"id"`
	Level      string    `json:"level" db:"level"`
	Message    string    `json:"message" db:"message"`
	InstanceID string    `json:"instance_id" db:"instance_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
