package model

import "time"

// User represents an account record as stored in the `users` table. The
// password is stored only as a bcrypt hash; the json tag hides it from any
// response that serializes the struct directly.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
