package services

import (
	"fmt"
	"log"
	"time"

	"feedboard/app/feed"
	"feedboard/app/models"
	"feedboard/app/repositories"
)

// PostService handles business logic for posts and post detail assembly
type PostService struct {
	postRepo        repositories.PostRepository
	commentRepo     repositories.CommentRepository
	userRepo        repositories.UserRepository
	postLikeRepo    repositories.PostLikeRepository
	commentLikeRepo repositories.CommentLikeRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	postLikeRepo repositories.PostLikeRepository,
	commentLikeRepo repositories.CommentLikeRepository,
) *PostService {
	return &PostService{
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		userRepo:        userRepo,
		postLikeRepo:    postLikeRepo,
		commentLikeRepo: commentLikeRepo,
	}
}

// CreatePost creates a new post with validation
func (s *PostService) CreatePost(authorID int, content string) (*models.Post, error) {
	if err := validateContent(content, 5000); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.userRepo.GetByID(authorID); err != nil {
		return nil, fmt.Errorf("author not found: %w", err)
	}

	post := &models.Post{
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves a page of posts with counts and the viewer's like state.
// viewerID 0 means anonymous.
func (s *PostService) ListPosts(page, perPage, viewerID int) ([]*PostView, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	posts, err := s.postRepo.List(perPage, offset)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]int, 0, len(posts))
	for _, post := range posts {
		authorIDs = append(authorIDs, post.AuthorID)
	}
	users, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.buildPostView(post, users, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetPostDetail retrieves a post and its full comment tree. All comments for
// the post come from one bulk fetch; the hierarchy is rebuilt in memory.
func (s *PostService) GetPostDetail(postID, viewerID int) (*PostDetailView, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}

	forest, dangling := feed.BuildTree(comments)
	if len(dangling) > 0 {
		// Data-integrity problem, not a request failure: the rest of the
		// thread still renders.
		log.Printf("post %d: excluded comments with dangling parents: %v", postID, dangling)
	}

	likeCounts, err := s.commentLikeRepo.CountsByPost(postID)
	if err != nil {
		return nil, err
	}

	liked := map[int]bool{}
	if viewerID != 0 {
		liked, err = s.commentLikeRepo.LikedByUser(viewerID, postID)
		if err != nil {
			return nil, err
		}
	}

	authorIDs := []int{post.AuthorID}
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.AuthorID)
	}
	users, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, err
	}

	postView, err := s.buildPostView(post, users, viewerID)
	if err != nil {
		return nil, err
	}

	detail := &PostDetailView{
		PostView: *postView,
		Comments: buildCommentViews(forest, users, likeCounts, liked),
	}
	return detail, nil
}

func (s *PostService) buildPostView(post *models.Post, users map[int]*models.User, viewerID int) (*PostView, error) {
	likeCount, err := s.postLikeRepo.CountByPost(post.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentRepo.CountByPost(post.ID)
	if err != nil {
		return nil, err
	}

	hasLiked := false
	if viewerID != 0 {
		hasLiked, err = s.postLikeRepo.HasLiked(viewerID, post.ID)
		if err != nil {
			return nil, err
		}
	}

	return &PostView{
		ID:           post.ID,
		Author:       authorView(post.AuthorID, users),
		Content:      post.Content,
		CreatedAt:    post.CreatedAt,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		UserHasLiked: hasLiked,
	}, nil
}

// buildCommentViews materializes the response tree from the feed forest.
func buildCommentViews(forest []*feed.Node, users map[int]*models.User, likeCounts map[int]int, liked map[int]bool) []*CommentView {
	views := make([]*CommentView, 0, len(forest))
	for _, node := range forest {
		comment := node.Comment
		views = append(views, &CommentView{
			ID:           comment.ID,
			Author:       authorView(comment.AuthorID, users),
			Content:      comment.Content,
			ParentID:     comment.ParentID,
			CreatedAt:    comment.CreatedAt,
			LikeCount:    likeCounts[comment.ID],
			UserHasLiked: liked[comment.ID],
			Replies:      buildCommentViews(node.Replies, users, likeCounts, liked),
		})
	}
	return views
}

func authorView(id int, users map[int]*models.User) AuthorView {
	if user, ok := users[id]; ok {
		return AuthorView{ID: user.ID, Username: user.Username}
	}
	return AuthorView{ID: id}
}

// validateContent checks the shared content precondition for posts and comments.
func validateContent(content string, maxLen int) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if len(content) > maxLen {
		return fmt.Errorf("content is too long (maximum %d characters)", maxLen)
	}
	return nil
}
