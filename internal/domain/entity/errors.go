package entity

import "errors"

// Store outcome sentinels. Repositories translate driver errors into these
// so handlers can map them to status codes with errors.Is instead of
// matching on error text.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
)
