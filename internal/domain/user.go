package domain

import "time"

// User is the domain entity for a registered account.
// Immutable after creation except for password rotation.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
