package services

import (
	"fmt"
	"time"

	"feedboard/app/models"
	"feedboard/app/repositories"
)

// LikeService handles liking and unliking posts and comments. Duplicate
// requests surface the repository conflict errors (ErrAlreadyLiked,
// ErrNotLiked) unchanged so callers can tell "already in that state" apart
// from real failures.
type LikeService struct {
	postRepo        repositories.PostRepository
	commentRepo     repositories.CommentRepository
	postLikeRepo    repositories.PostLikeRepository
	commentLikeRepo repositories.CommentLikeRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	postLikeRepo repositories.PostLikeRepository,
	commentLikeRepo repositories.CommentLikeRepository,
) *LikeService {
	return &LikeService{
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		postLikeRepo:    postLikeRepo,
		commentLikeRepo: commentLikeRepo,
	}
}

// LikePost records a like on a post for the given user.
func (s *LikeService) LikePost(userID, postID int) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return fmt.Errorf("post not found: %w", err)
	}

	like := &models.PostLike{
		UserID:    userID,
		PostID:    postID,
		AuthorID:  post.AuthorID,
		CreatedAt: time.Now(),
	}
	return s.postLikeRepo.Create(like)
}

// UnlikePost removes the user's like from a post.
func (s *LikeService) UnlikePost(userID, postID int) error {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return fmt.Errorf("post not found: %w", err)
	}
	return s.postLikeRepo.Delete(userID, postID)
}

// LikeComment records a like on a comment for the given user.
func (s *LikeService) LikeComment(userID, commentID int) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return fmt.Errorf("comment not found: %w", err)
	}

	like := &models.CommentLike{
		UserID:    userID,
		CommentID: commentID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		CreatedAt: time.Now(),
	}
	return s.commentLikeRepo.Create(like)
}

// UnlikeComment removes the user's like from a comment.
func (s *LikeService) UnlikeComment(userID, commentID int) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return fmt.Errorf("comment not found: %w", err)
	}
	return s.commentLikeRepo.Delete(userID, commentID, comment.PostID)
}
