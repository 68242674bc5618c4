package entity

import (
	"time"
)

// Follow is a directed edge between two users, unique per
// (follower, following). follow(a,b) and follow(b,a) are independent edges.
type Follow struct {
	ID          int64
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}
