package entity

import (
	"time"
)

// Session is a revocable login handle. Token is opaque and unguessable;
// verifying it always goes through the store, so deleting the row (directly
// or via the owning user's cascade) invalidates it immediately.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
