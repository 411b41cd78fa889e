package service

import (
	"context"
	"errors"

	"github.com/devconnect/devconnect-go/internal/model"
	"github.com/devconnect/devconnect-go/internal/repository"
)

var (
	ErrPostNotFound    = errors.New("Post not found")
	ErrCommentNotFound = errors.New("Comment does not exist")
	ErrNotOwner        = errors.New("User not authorized")
	ErrAlreadyLiked    = errors.New("Post already liked")
	ErrNotYetLiked     = errors.New("Post has not yet been liked")
)

// PostService handles feed post business logic.
type PostService struct {
	posts PostStore
	users UserStore
}

// NewPostService creates a new PostService.
func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create publishes a post, denormalizing the author's name and avatar.
func (s *PostService) Create(ctx context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error) {
	if req.Text == "" {
		return nil, (&model.ValidationError{}).Add("text", "Text is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.posts.GetByID(ctx, post.ID)
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

// Get retrieves a single post.
func (s *PostService) Get(ctx context.Context, postID int64) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the owner may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID int64) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, postID)
}

// Like records a like; a user can like a post only once.
func (s *PostService) Like(ctx context.Context, userID, postID int64) (*model.Post, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.posts.Like(ctx, postID, userID); err != nil {
		if errors.Is(err, repository.ErrAlreadyLiked) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	return s.Get(ctx, postID)
}

// Unlike removes a like; the post must currently be liked by the user.
func (s *PostService) Unlike(ctx context.Context, userID, postID int64) (*model.Post, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.posts.Unlike(ctx, postID, userID); err != nil {
		if errors.Is(err, repository.ErrNotLiked) {
			return nil, ErrNotYetLiked
		}
		return nil, err
	}

	return s.Get(ctx, postID)
}

// Comment adds a comment to a post.
func (s *PostService) Comment(ctx context.Context, userID, postID int64, req model.CommentRequest) (*model.Post, error) {
	if req.Text == "" {
		return nil, (&model.ValidationError{}).Add("text", "Text is required")
	}

	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	return s.Get(ctx, postID)
}

// RemoveComment deletes a comment. Only the comment's author may remove it.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID int64) (*model.Post, error) {
	comment, err := s.posts.GetComment(ctx, postID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrNotOwner
	}

	if err := s.posts.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	return s.Get(ctx, postID)
}
