package repositories

import (
	"fmt"
	"time"

	"feedboard/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostLikeRepository implements PostLikeRepository using BadgerDB.
//
// One like is one key: postlike:<postID>:<userID>. Existence of the key IS
// the uniqueness constraint, and the existence check runs inside the same
// transaction as the write. When two identical like requests race, badger's
// conflict detection fails one of the commits, which is reported as
// ErrAlreadyLiked — never as a second stored like.
type BadgerPostLikeRepository struct {
	db *badger.DB
}

// NewBadgerPostLikeRepository creates a new BadgerPostLikeRepository
func NewBadgerPostLikeRepository(db *badger.DB) *BadgerPostLikeRepository {
	return &BadgerPostLikeRepository{db: db}
}

func postLikeKey(postID, userID int) []byte {
	return []byte(fmt.Sprintf("%s%d:%d", PostLikeKeyPrefix, postID, userID))
}

// Create stores a like, rejecting duplicates with ErrAlreadyLiked.
func (r *BadgerPostLikeRepository) Create(like *models.PostLike) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := postLikeKey(like.PostID, like.UserID)
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
func (r *BadgerPostLikeRepository) Delete(userID, postID int) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := postLikeKey(postID, userID)
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

// CountByPost counts likes on a post.
func (r *BadgerPostLikeRepository) CountByPost(postID int) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%d:", PostLikeKeyPrefix, postID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// HasLiked reports whether the user has liked the post.
func (r *BadgerPostLikeRepository) HasLiked(userID, postID int) (bool, error) {
	liked := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(postLikeKey(postID, userID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// ListSince returns all post likes created at or after cutoff.
func (r *BadgerPostLikeRepository) ListSince(cutoff time.Time) ([]*models.PostLike, error) {
	var likes []*models.PostLike
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostLikeKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var like models.PostLike
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &like)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post like: %v", err)
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
