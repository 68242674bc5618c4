package application

import (
	"context"
	"sync"
	"time"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/errs"
)

// memStore is an in-memory stand-in for the Postgres gateways. It mirrors
// the store contract the services rely on: uniqueness rejection on insert
// and cascading deletes from users and posts. Error injection hooks let
// tests replay the lost side of a check-then-insert race.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*entity.User
	sessions map[int64]*entity.Session
	posts    map[int64]*entity.Post
	comments map[int64]*entity.Comment
	likes    map[int64]*entity.Like
	follows  map[int64]*entity.Follow

	likeInsertErr   error
	followInsertErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*entity.User),
		sessions: make(map[int64]*entity.Session),
		posts:    make(map[int64]*entity.Post),
		comments: make(map[int64]*entity.Comment),
		likes:    make(map[int64]*entity.Like),
		follows:  make(map[int64]*entity.Follow),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) userRepo() *userRepoStub       { return &userRepoStub{s} }
func (s *memStore) sessionRepo() *sessionRepoStub { return &sessionRepoStub{s} }
func (s *memStore) postRepo() *postRepoStub       { return &postRepoStub{s} }
func (s *memStore) followRepo() *followRepoStub   { return &followRepoStub{s} }

type userRepoStub struct{ s *memStore }

func (r *userRepoStub) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return errs.ErrAlreadyExists
		}
	}
	u.ID = r.s.id()
	u.CreatedAt = time.Now()
	clone := *u
	r.s.users[u.ID] = &clone
	return nil
}

func (r *userRepoStub) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *userRepoStub) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *userRepoStub) List(_ context.Context, limit, offset int) ([]entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, *u)
	}
	_ = limit
	_ = offset
	return out, nil
}

// Delete cascades exactly like the schema: sessions, authored posts with
// their comments and likes, authored comments, given likes, follow edges.
func (r *userRepoStub) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.s.users, id)
	for sid, sess := range r.s.sessions {
		if sess.UserID == id {
			delete(r.s.sessions, sid)
		}
	}
	for pid, p := range r.s.posts {
		if p.AuthorID == id {
			r.s.deletePostLocked(pid)
		}
	}
	for cid, c := range r.s.comments {
		if c.AuthorID == id {
			delete(r.s.comments, cid)
		}
	}
	for lid, l := range r.s.likes {
		if l.UserID == id {
			delete(r.s.likes, lid)
		}
	}
	for fid, f := range r.s.follows {
		if f.FollowerID == id || f.FollowingID == id {
			delete(r.s.follows, fid)
		}
	}
	return nil
}

func (s *memStore) deletePostLocked(postID int64) {
	delete(s.posts, postID)
	for cid, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, cid)
		}
	}
	for lid, l := range s.likes {
		if l.PostID == postID {
			delete(s.likes, lid)
		}
	}
}

type sessionRepoStub struct{ s *memStore }

func (r *sessionRepoStub) Create(_ context.Context, sess *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.sessions {
		if existing.Token == sess.Token {
			return errs.ErrAlreadyExists
		}
	}
	sess.ID = r.s.id()
	sess.CreatedAt = time.Now()
	clone := *sess
	r.s.sessions[sess.ID] = &clone
	return nil
}

func (r *sessionRepoStub) GetByToken(_ context.Context, token string) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sess := range r.s.sessions {
		if sess.Token == token {
			clone := *sess
			return &clone, nil
		}
	}
	return nil, errs.ErrNotFound
}

type postRepoStub struct{ s *memStore }

func (r *postRepoStub) Create(_ context.Context, p *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	p.CreatedAt = time.Now()
	clone := *p
	r.s.posts[p.ID] = &clone
	return nil
}

func (r *postRepoStub) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *postRepoStub) List(_ context.Context, limit, offset int) ([]entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		out = append(out, *p)
	}
	_ = limit
	_ = offset
	return out, nil
}

func (r *postRepoStub) AddComment(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	c.CreatedAt = time.Now()
	clone := *c
	r.s.comments[c.ID] = &clone
	return nil
}

func (r *postRepoStub) AddLike(_ context.Context, l *entity.Like) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.likeInsertErr != nil {
		return r.s.likeInsertErr
	}
	for _, existing := range r.s.likes {
		if existing.PostID == l.PostID && existing.UserID == l.UserID {
			return errs.ErrAlreadyExists
		}
	}
	l.ID = r.s.id()
	l.CreatedAt = time.Now()
	clone := *l
	r.s.likes[l.ID] = &clone
	return nil
}

func (r *postRepoStub) GetLike(_ context.Context, postID, userID int64) (*entity.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.likes {
		if l.PostID == postID && l.UserID == userID {
			clone := *l
			return &clone, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *postRepoStub) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return errs.ErrNotFound
	}
	r.s.deletePostLocked(id)
	return nil
}

type followRepoStub struct{ s *memStore }

func (r *followRepoStub) Create(_ context.Context, f *entity.Follow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.followInsertErr != nil {
		return r.s.followInsertErr
	}
	for _, existing := range r.s.follows {
		if existing.FollowerID == f.FollowerID && existing.FollowingID == f.FollowingID {
			return errs.ErrAlreadyExists
		}
	}
	f.ID = r.s.id()
	f.CreatedAt = time.Now()
	clone := *f
	r.s.follows[f.ID] = &clone
	return nil
}

func (r *followRepoStub) Get(_ context.Context, followerID, followingID int64) (*entity.Follow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, errs.ErrNotFound
}
