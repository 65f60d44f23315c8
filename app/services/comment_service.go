package services

import (
	"fmt"
	"time"

	"feedboard/app/models"
	"feedboard/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	userRepo    repositories.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment creates a comment on a post, optionally as a reply to
// another comment on the same post.
func (s *CommentService) CreateComment(postID, authorID int, content string, parentID *int) (*models.Comment, error) {
	if err := validateContent(content, 2000); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post not found: %w", err)
	}

	if _, err := s.userRepo.GetByID(authorID); err != nil {
		return nil, fmt.Errorf("author not found: %w", err)
	}

	if parentID != nil {
		parent, err := s.commentRepo.GetByID(*parentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent comment %d does not exist", ErrInvalidInput, *parentID)
		}
		// Replies must stay inside the same thread.
		if parent.PostID != postID {
			return nil, fmt.Errorf("%w: parent comment belongs to a different post", ErrInvalidInput)
		}
	}

	comment := &models.Comment{
		PostID:    postID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}
