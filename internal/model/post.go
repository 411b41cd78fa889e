package model

import "time"

// Like records that a user liked a post. A user can like a post at most once.
type Like struct {
	UserID int64 `json:"user_id"`
}

// Comment is a reply embedded in a post's comment list.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Post represents a feed post. Author name and avatar are denormalized at
// creation time so posts survive profile edits unchanged.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest represents a request to create a post.
type CreatePostRequest struct {
	Text string `json:"text"`
}

// CommentRequest represents a request to comment on a post.
type CommentRequest struct {
	Text string `json:"text"`
}
