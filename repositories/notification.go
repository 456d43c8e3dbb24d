//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=../mocks/mock_notification_repository.go -package=mocks
package repositories

import (
	"companion-lab/domain"
	"companion-lab/errors"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const notificationSequenceKey = "seq:notif"

type INotificationRepository interface {
	Store(notification domain.Notification) error
	List(recipientID string) ([]domain.Notification, error)
	MarkRead(recipientID, notificationID string) (domain.Notification, error)
}

type NotificationRepository struct {
	db       *badger.DB
	log      *slog.Logger
	sequence *badger.Sequence
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) (*NotificationRepository, error) {
	sequence, err := db.GetSequence([]byte(notificationSequenceKey), 100)
	if err != nil {
		return nil, fmt.Errorf("notification sequence: %w", err)
	}
	return &NotificationRepository{db: db, log: log, sequence: sequence}, nil
}

// Store writes the notification under "notif:{recipient}:{sequence}" and keeps
// a secondary "idx:notif:{id}" entry pointing to it.
func (n *NotificationRepository) Store(notification domain.Notification) error {
	seq, err := n.sequence.Next()
	if err != nil {
		return err
	}
	key := fmt.Sprintf("notif:%s:%019d", notification.RecipientID, seq)
	bytes, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return n.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		return txn.Set(indexKey(notification.ID), []byte(key))
	})
}

// List returns the notifications of a recipient, newest first.
func (n *NotificationRepository) List(recipientID string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	prefixStr := fmt.Sprintf("notif:%s:", recipientID)
	prefix := []byte(prefixStr)

	err := n.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key of the prefix
		for it.Seek(append([]byte(prefixStr), 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var notification domain.Notification
				if err := json.Unmarshal(value, &notification); err != nil {
					return err
				}
				notifications = append(notifications, notification)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return notifications, err
}

func (n *NotificationRepository) MarkRead(recipientID, notificationID string) (domain.Notification, error) {
	var notification domain.Notification
	err := n.db.Update(func(txn *badger.Txn) error {
		idx, err := txn.Get(indexKey(notificationID))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrNotificationNotFound
		}
		if err != nil {
			return err
		}
		key, err := idx.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		if err = item.Value(func(value []byte) error {
			return json.Unmarshal(value, &notification)
		}); err != nil {
			return err
		}
		if notification.RecipientID != recipientID {
			return errors.ErrNotificationNotFound
		}
		notification.Read = true
		bytes, err := json.Marshal(notification)
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
	return notification, err
}

func (n *NotificationRepository) Close() error {
	return n.sequence.Release()
}

func indexKey(notificationID string) []byte {
	return []byte("idx:notif:" + notificationID)
}
