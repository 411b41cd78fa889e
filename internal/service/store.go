package service

import (
	"context"

	"github.com/devconnect/devconnect-go/internal/model"
)

// The services consume narrow store interfaces rather than concrete
// repositories so business rules can be exercised without a live database.
// The repository package provides the MySQL implementations.

// UserStore persists user records.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

// ProfileStore persists profiles and their embedded experience and
// education collections.
type ProfileStore interface {
	Upsert(ctx context.Context, p *model.Profile) error
	GetByUserID(ctx context.Context, userID int64) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	DeleteByUserID(ctx context.Context, userID int64) error
	AddExperience(ctx context.Context, profileID int64, exp *model.Experience) (int64, error)
	DeleteExperience(ctx context.Context, profileID, expID int64) error
	AddEducation(ctx context.Context, profileID int64, edu *model.Education) (int64, error)
	DeleteEducation(ctx context.Context, profileID, eduID int64) error
}

// PostStore persists posts, likes, and comments.
type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	Like(ctx context.Context, postID, userID int64) error
	Unlike(ctx context.Context, postID, userID int64) error
	AddComment(ctx context.Context, postID int64, c *model.Comment) error
	GetComment(ctx context.Context, postID, commentID int64) (*model.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error
}
