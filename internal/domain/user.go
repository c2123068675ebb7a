package domain

import "time"

// User represents a registered account. Passwords are stored as bcrypt hashes.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
