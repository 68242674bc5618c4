package entity

import (
	"time"
)

// Post owns its comments and likes; deleting a post removes both.
type Post struct {
	ID        int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
}

type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
}

// Like is a directed edge from a user to a post, unique per (post, user).
type Like struct {
	ID        int64
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}
