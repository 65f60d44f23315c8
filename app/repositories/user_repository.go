package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"feedboard/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

func usernameKey(username string) []byte {
	return []byte(UsernameKeyPrefix + strings.ToLower(username))
}

// Create creates a new user. Username uniqueness is enforced by the
// username index key inside the same transaction as the user write;
// a concurrent commit of the same username surfaces as ErrUsernameTaken.
func (r *BadgerUserRepository) Create(user *models.User) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(usernameKey(user.Username))
		if err == nil {
			return ErrUsernameTaken
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(usernameKey(user.Username), []byte(strconv.Itoa(user.ID)))
	})
	if err == badger.ErrConflict {
		return ErrUsernameTaken
	}
	return err
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user through the username index
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var id int

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id, err = strconv.Atoi(string(val))
			return err
		})
	})

	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// GetByIDs bulk-fetches users; missing IDs are simply absent from the map.
func (r *BadgerUserRepository) GetByIDs(ids []int) (map[int]*models.User, error) {
	users := make(map[int]*models.User, len(ids))

	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if _, ok := users[id]; ok {
				continue
			}
			key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
			item, err := txn.Get(key)
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			var user models.User
			err = item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return err
			}
			users[id] = &user
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return users, nil
}
