package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a row in the users table. PasswordHash is a bcrypt
// digest and must never appear in responses or log output.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
