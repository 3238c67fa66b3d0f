package entity

import "time"

// User represents a registered person.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest represents the request body for updating a user.
// Absent fields decode as empty strings and are written as such; update is
// a full overwrite, not a patch merge.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
