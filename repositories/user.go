//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"companion-lab/domain"
	"companion-lab/errors"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	userKey       = "user:current"
	legacyUserKey = "mock_user_v2"

	SchemaV1      = 1
	SchemaV2      = 2
	CurrentSchema = SchemaV2
)

type IUserRepository interface {
	Save(user User) error
	Load() (User, error)
	Clear() error
}

// User is the single persisted identity of the device.
type User struct {
	Profile   domain.UserProfile
	PhoneHash string
	SavedAt   time.Time
}

// userRecord wraps every stored payload with the schema it was written with.
type userRecord struct {
	SchemaVersion int             `json:"schemaVersion"`
	Payload       json.RawMessage `json:"payload"`
}

// userV1 is the shape written under the legacy "mock_user_v2" key.
type userV1 struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Avatar string `json:"avatar"`
}

type userV2 struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Avatar        string `json:"avatar"`
	PhoneVerified bool   `json:"phoneVerified"`
	PhoneHash     string `json:"phoneHash,omitempty"`
	SavedAt       int64  `json:"savedAt"`
}

// migrations[n] upgrades a payload from schema n to n+1.
var migrations = map[int]func(json.RawMessage) (json.RawMessage, error){
	SchemaV1: migrateV1ToV2,
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// Save always writes the current schema.
func (u UserRepository) Save(user User) error {
	var savedAt int64
	if !user.SavedAt.IsZero() {
		savedAt = user.SavedAt.UnixNano()
	}
	payload, err := json.Marshal(userV2{
		ID:            user.Profile.ID,
		Name:          user.Profile.Name,
		Gender:        string(user.Profile.Gender),
		Avatar:        user.Profile.Avatar,
		PhoneVerified: user.Profile.PhoneVerified,
		PhoneHash:     user.PhoneHash,
		SavedAt:       savedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	data, err := json.Marshal(userRecord{SchemaVersion: CurrentSchema, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(userKey), data)
	})
}

// Load reads the stored user and upgrades it to the current schema.
// A record found under the legacy key is migrated and rewritten under the new one.
func (u UserRepository) Load() (User, error) {
	record, legacy, err := u.read()
	if err != nil {
		return User{}, err
	}

	from := record.SchemaVersion
	if from < SchemaV1 || from > CurrentSchema {
		return User{}, fmt.Errorf("%w: %d", errors.ErrUnknownSchema, from)
	}
	payload := record.Payload
	for v := from; v < CurrentSchema; v++ {
		if payload, err = migrations[v](payload); err != nil {
			return User{}, fmt.Errorf("migration from v%d failed: %w", v, err)
		}
	}

	var stored userV2
	if err = json.Unmarshal(payload, &stored); err != nil {
		return User{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	user := toUser(stored)

	if from != CurrentSchema || legacy {
		u.log.Info("Migrating stored user", "from", from, "to", CurrentSchema, "legacy", legacy)
		if err = u.Save(user); err != nil {
			return User{}, err
		}
		if legacy {
			if err = u.deleteKeys(legacyUserKey); err != nil {
				return User{}, err
			}
		}
	}
	return user, nil
}

func (u UserRepository) Clear() error {
	return u.deleteKeys(userKey, legacyUserKey)
}

func (u UserRepository) read() (userRecord, bool, error) {
	var record userRecord
	var legacy bool
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userKey))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			item, err = txn.Get([]byte(legacyUserKey))
			legacy = true
		}
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if legacy {
				record = userRecord{SchemaVersion: SchemaV1, Payload: append([]byte(nil), val...)}
				return nil
			}
			return json.Unmarshal(val, &record)
		})
	})
	return record, legacy, err
}

func (u UserRepository) deleteKeys(keys ...string) error {
	return u.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

func migrateV1ToV2(payload json.RawMessage) (json.RawMessage, error) {
	var v1 userV1
	if err := json.Unmarshal(payload, &v1); err != nil {
		return nil, err
	}
	return json.Marshal(userV2{
		ID:     v1.ID,
		Name:   v1.Name,
		Gender: v1.Gender,
		Avatar: v1.Avatar,
	})
}

func toUser(stored userV2) User {
	var savedAt time.Time
	if stored.SavedAt != 0 {
		savedAt = time.Unix(0, stored.SavedAt).UTC()
	}
	return User{
		Profile: domain.UserProfile{
			ID:            stored.ID,
			Name:          stored.Name,
			Gender:        domain.Gender(stored.Gender),
			Avatar:        stored.Avatar,
			PhoneVerified: stored.PhoneVerified,
		},
		PhoneHash: stored.PhoneHash,
		SavedAt:   savedAt,
	}
}
