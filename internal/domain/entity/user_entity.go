package entity

import (
	"time"
)

// User is the aggregate root for the social graph. A user exclusively owns
// its sessions, authored posts, comments and given likes; deleting the user
// removes all of them.
//
// PasswordHash holds the salted PBKDF2 encoding, never a plaintext password.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
