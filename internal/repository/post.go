package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devconnect/devconnect-go/internal/model"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post not liked")
)

// PostRepository handles post persistence, including likes and comments.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post and sets the generated ID on the post struct.
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `INSERT INTO posts (user_id, text, name, avatar) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, post.UserID, post.Text, post.Name, post.Avatar)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	post.ID = id
	return nil
}

// GetByID retrieves a post with its likes and comments.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	query := `SELECT id, user_id, text, name, avatar, created_at FROM posts WHERE id = ?`

	post := &model.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Text, &post.Name, &post.Avatar, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if err := r.loadReactions(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// List retrieves all posts, newest first, with likes and comments loaded.
func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, text, name, avatar, created_at FROM posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range posts {
		if err := r.loadReactions(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

// Delete removes a post. Likes and comments cascade.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeleteByUser removes every post owned by a user.
func (r *PostRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE user_id = ?`, userID)
	return err
}

// Like records a like. Liking a post twice returns ErrAlreadyLiked.
func (r *PostRepository) Like(ctx context.Context, postID, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO post_likes (post_id, user_id) VALUES (?, ?)`, postID, userID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// Unlike removes a like. Unliking a post that was never liked returns ErrNotLiked.
func (r *PostRepository) Unlike(ctx context.Context, postID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = ? AND user_id = ?`, postID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotLiked
	}

	return nil
}

// AddComment inserts a comment and sets its generated ID.
func (r *PostRepository) AddComment(ctx context.Context, postID int64, c *model.Comment) error {
	query := `INSERT INTO post_comments (post_id, user_id, text, name, avatar) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, postID, c.UserID, c.Text, c.Name, c.Avatar)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

// GetComment retrieves a single comment on a post.
func (r *PostRepository) GetComment(ctx context.Context, postID, commentID int64) (*model.Comment, error) {
	query := `SELECT id, user_id, text, name, avatar, created_at
		FROM post_comments WHERE id = ? AND post_id = ?`

	c := &model.Comment{}
	err := r.db.QueryRowContext(ctx, query, commentID, postID).Scan(
		&c.ID, &c.UserID, &c.Text, &c.Name, &c.Avatar, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	return c, nil
}

// DeleteComment removes a comment from a post.
func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM post_comments WHERE id = ? AND post_id = ?`, commentID, postID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// loadReactions populates a post's likes and comments, newest comment first.
func (r *PostRepository) loadReactions(ctx context.Context, post *model.Post) error {
	post.Likes = []model.Like{}
	post.Comments = []model.Comment{}

	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM post_likes WHERE post_id = ?`, post.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l model.Like
		if err := rows.Scan(&l.UserID); err != nil {
			return err
		}
		post.Likes = append(post.Likes, l)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	commentRows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, text, name, avatar, created_at
		FROM post_comments WHERE post_id = ? ORDER BY id DESC`, post.ID)
	if err != nil {
		return err
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var c model.Comment
		if err := commentRows.Scan(&c.ID, &c.UserID, &c.Text, &c.Name, &c.Avatar, &c.CreatedAt); err != nil {
			return err
		}
		post.Comments = append(post.Comments, c)
	}

	return commentRows.Err()
}
