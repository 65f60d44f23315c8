package repositories

import (
	"time"

	"feedboard/app/models"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	CountByPost(postID int) (int, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []int) (map[int]*models.User, error)
}

// PostLikeRepository persists likes on posts. Create returns ErrAlreadyLiked
// and Delete returns ErrNotLiked when the (user, post) pair is already in the
// requested state; the uniqueness check happens inside the durable write.
type PostLikeRepository interface {
	Create(like *models.PostLike) error
	Delete(userID, postID int) error
	CountByPost(postID int) (int, error)
	HasLiked(userID, postID int) (bool, error)
	ListSince(cutoff time.Time) ([]*models.PostLike, error)
}

// CommentLikeRepository persists likes on comments, unique per
// (user, comment) with the same conflict semantics as PostLikeRepository.
type CommentLikeRepository interface {
	Create(like *models.CommentLike) error
	Delete(userID, commentID, postID int) error
	CountsByPost(postID int) (map[int]int, error)
	LikedByUser(userID, postID int) (map[int]bool, error)
	ListSince(cutoff time.Time) ([]*models.CommentLike, error)
}
