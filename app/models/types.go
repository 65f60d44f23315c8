package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User is an account that authors posts and comments and gives likes.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=2,max=50"`
	PasswordHash string    `json:"password_hash" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post is a text post in the feed.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	AuthorID  int       `json:"author_id" validate:"required,gt=0"`
	Content   string    `json:"content" validate:"required,min=1,max=5000"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a comment on a post, or a reply to another comment when
// ParentID is set (adjacency-list threading, nil = top level).
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"post_id" validate:"required,gt=0"`
	AuthorID  int       `json:"author_id" validate:"required,gt=0"`
	ParentID  *int      `json:"parent_id"`
	Content   string    `json:"content" validate:"required,min=1,max=2000"`
	CreatedAt time.Time `json:"created_at"`
}

// PostLike is one like on a post. The (UserID, PostID) pair is unique;
// AuthorID is the post author, denormalized at write time so karma
// aggregation never has to join back to posts.
type PostLike struct {
	UserID    int       `json:"user_id"`
	PostID    int       `json:"post_id"`
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike is one like on a comment, unique per (UserID, CommentID).
type CommentLike struct {
	UserID    int       `json:"user_id"`
	CommentID int       `json:"comment_id"`
	PostID    int       `json:"post_id"`
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
