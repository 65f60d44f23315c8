package repositories

import (
	"fmt"
	"time"

	"feedboard/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentLikeRepository implements CommentLikeRepository using BadgerDB.
// Keys are commentlike:<postID>:<commentID>:<userID>, so one post's comment
// likes share a prefix and the per-pair uniqueness rule works the same way as
// for post likes.
type BadgerCommentLikeRepository struct {
	db *badger.DB
}

// NewBadgerCommentLikeRepository creates a new BadgerCommentLikeRepository
func NewBadgerCommentLikeRepository(db *badger.DB) *BadgerCommentLikeRepository {
	return &BadgerCommentLikeRepository{db: db}
}

func commentLikeKey(postID, commentID, userID int) []byte {
	return []byte(fmt.Sprintf("%s%d:%d:%d", CommentLikeKeyPrefix, postID, commentID, userID))
}

// Create stores a like, rejecting duplicates with ErrAlreadyLiked.
func (r *BadgerCommentLikeRepository) Create(like *models.CommentLike) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := commentLikeKey(like.PostID, like.CommentID, like.UserID)
		_, err := txn.Get(key)
		if err == nil {
			return ErrAlreadyLiked
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := marshalEntity(like)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err == badger.ErrConflict {
		return ErrAlreadyLiked
	}
	return err
}

// Delete removes a like, rejecting an absent one with ErrNotLiked.
func (r *BadgerCommentLikeRepository) Delete(userID, commentID, postID int) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := commentLikeKey(postID, commentID, userID)
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotLiked
		}
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err == badger.ErrConflict {
		return ErrNotLiked
	}
	return err
}

// CountsByPost returns like counts keyed by comment ID for one post.
func (r *BadgerCommentLikeRepository) CountsByPost(postID int) (map[int]int, error) {
	counts := make(map[int]int)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%d:", CommentLikeKeyPrefix, postID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var like models.CommentLike
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &like)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment like: %v", err)
			}
			counts[like.CommentID]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// LikedByUser returns the set of comment IDs on a post that the user liked.
func (r *BadgerCommentLikeRepository) LikedByUser(userID, postID int) (map[int]bool, error) {
	liked := make(map[int]bool)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%d:", CommentLikeKeyPrefix, postID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var like models.CommentLike
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &like)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment like: %v", err)
			}
			if like.UserID == userID {
				liked[like.CommentID] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return liked, nil
}

// ListSince returns all comment likes created at or after cutoff.
func (r *BadgerCommentLikeRepository) ListSince(cutoff time.Time) ([]*models.CommentLike, error) {
	var likes []*models.CommentLike
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentLikeKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var like models.CommentLike
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &like)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment like: %v", err)
			}
			if like.CreatedAt.Before(cutoff) {
				continue
			}
			likes = append(likes, &like)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return likes, nil
}
