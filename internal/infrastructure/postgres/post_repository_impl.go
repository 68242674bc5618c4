package postgres

import (
	"context"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/errs"
	"github.com/pulseline/pulseline/internal/domain/repository"
)

type PostRepository struct {
	db Querier
}

func NewPostRepository(db Querier) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO posts (author_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, p.AuthorID, p.Content)

	return translateErr(row.Scan(&p.ID, &p.CreatedAt))
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.db.QueryRow(ctx, `
		SELECT id, author_id, content, created_at
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt); err != nil {
		return nil, translateErr(err)
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]entity.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, author_id, content, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) AddComment(ctx context.Context, c *entity.Comment) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.PostID, c.AuthorID, c.Content)

	return translateErr(row.Scan(&c.ID, &c.CreatedAt))
}

func (r *PostRepository) AddLike(ctx context.Context, l *entity.Like) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, l.PostID, l.UserID)

	return translateErr(row.Scan(&l.ID, &l.CreatedAt))
}

func (r *PostRepository) GetLike(ctx context.Context, postID, userID int64) (*entity.Like, error) {
	l := &entity.Like{}
	row := r.db.QueryRow(ctx, `
		SELECT id, post_id, user_id, created_at
		FROM likes
		WHERE post_id = $1 AND user_id = $2
	`, postID, userID)

	if err := row.Scan(&l.ID, &l.PostID, &l.UserID, &l.CreatedAt); err != nil {
		return nil, translateErr(err)
	}
	return l, nil
}

// Delete removes the post in one statement; its comments and likes cascade
// inside it.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
