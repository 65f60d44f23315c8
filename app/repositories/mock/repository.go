// Package mock provides in-memory repository implementations for tests.
// Conflict semantics mirror the badger implementations: duplicate likes are
// rejected at the write, never silently absorbed.
package mock

import (
	"sort"
	"strings"
	"sync"
	"time"

	"feedboard/app/models"
	"feedboard/app/repositories"
)

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})

	if offset >= len(posts) {
		return nil, nil
	}
	posts = posts[offset:]
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

type CommentRepository struct {
	comments map[int]*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (m *CommentRepository) CountByPost(postID int) (int, error) {
	comments, err := m.ListByPost(postID)
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}

type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return repositories.ErrUsernameTaken
		}
	}

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) GetByIDs(ids []int) (map[int]*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	users := make(map[int]*models.User, len(ids))
	for _, id := range ids {
		if user, exists := m.users[id]; exists {
			users[id] = user
		}
	}
	return users, nil
}

type likeKey struct {
	userID   int
	targetID int
}

type PostLikeRepository struct {
	likes map[likeKey]*models.PostLike
	mutex sync.Mutex
}

func NewPostLikeRepository() *PostLikeRepository {
	return &PostLikeRepository{likes: make(map[likeKey]*models.PostLike)}
}

func (m *PostLikeRepository) Create(like *models.PostLike) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := likeKey{userID: like.UserID, targetID: like.PostID}
	if _, exists := m.likes[key]; exists {
		return repositories.ErrAlreadyLiked
	}
	m.likes[key] = like
	return nil
}

func (m *PostLikeRepository) Delete(userID, postID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := likeKey{userID: userID, targetID: postID}
	if _, exists := m.likes[key]; !exists {
		return repositories.ErrNotLiked
	}
	delete(m.likes, key)
	return nil
}

func (m *PostLikeRepository) CountByPost(postID int) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	count := 0
	for key := range m.likes {
		if key.targetID == postID {
			count++
		}
	}
	return count, nil
}

func (m *PostLikeRepository) HasLiked(userID, postID int) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, exists := m.likes[likeKey{userID: userID, targetID: postID}]
	return exists, nil
}

func (m *PostLikeRepository) ListSince(cutoff time.Time) ([]*models.PostLike, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var likes []*models.PostLike
	for _, like := range m.likes {
		if !like.CreatedAt.Before(cutoff) {
			likes = append(likes, like)
		}
	}
	return likes, nil
}

type CommentLikeRepository struct {
	likes map[likeKey]*models.CommentLike
	mutex sync.Mutex
}

func NewCommentLikeRepository() *CommentLikeRepository {
	return &CommentLikeRepository{likes: make(map[likeKey]*models.CommentLike)}
}

func (m *CommentLikeRepository) Create(like *models.CommentLike) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := likeKey{userID: like.UserID, targetID: like.CommentID}
	if _, exists := m.likes[key]; exists {
		return repositories.ErrAlreadyLiked
	}
	m.likes[key] = like
	return nil
}

func (m *CommentLikeRepository) Delete(userID, commentID, postID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := likeKey{userID: userID, targetID: commentID}
	if _, exists := m.likes[key]; !exists {
		return repositories.ErrNotLiked
	}
	delete(m.likes, key)
	return nil
}

func (m *CommentLikeRepository) CountsByPost(postID int) (map[int]int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	counts := make(map[int]int)
	for _, like := range m.likes {
		if like.PostID == postID {
			counts[like.CommentID]++
		}
	}
	return counts, nil
}

func (m *CommentLikeRepository) LikedByUser(userID, postID int) (map[int]bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	liked := make(map[int]bool)
	for _, like := range m.likes {
		if like.UserID == userID && like.PostID == postID {
			liked[like.CommentID] = true
		}
	}
	return liked, nil
}

func (m *CommentLikeRepository) ListSince(cutoff time.Time) ([]*models.CommentLike, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var likes []*models.CommentLike
	for _, like := range m.likes {
		if !like.CreatedAt.Before(cutoff) {
			likes = append(likes, like)
		}
	}
	return likes, nil
}
