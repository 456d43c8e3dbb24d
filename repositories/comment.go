//go:generate go run go.uber.org/mock/mockgen -source=comment.go -destination=../mocks/mock_comment_repository.go -package=mocks
package repositories

import (
	"companion-lab/domain"
	"companion-lab/errors"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const commentSequenceKey = "seq:comment"

type ICommentRepository interface {
	StoreComment(eventID string, comment domain.Message) error
	GetComments(eventID string, cursor *string) ([]domain.Message, *string, error)
}

type CommentRepository struct {
	db            *badger.DB
	log           *slog.Logger
	sequence      *badger.Sequence
	limitComments *int
}

// NewCommentRepository leases a badger sequence used to order comments.
// Close releases it. A nil limit reads every comment in one page.
func NewCommentRepository(db *badger.DB, log *slog.Logger, limitComments *int) (*CommentRepository, error) {
	if limitComments != nil && *limitComments < 1 {
		return nil, fmt.Errorf("%w, got %d", errors.ErrInvalidLimit, *limitComments)
	}
	sequence, err := db.GetSequence([]byte(commentSequenceKey), 100)
	if err != nil {
		return nil, fmt.Errorf("comment sequence: %w", err)
	}
	return &CommentRepository{db: db, log: log, sequence: sequence, limitComments: limitComments}, nil
}

// StoreComment persists a consultation message in BadgerDB.
// The key is formatted as "comment:{event_id}:{sequence_padded}" so that a prefix
// scan returns the messages in the order they were sent.
func (c *CommentRepository) StoreComment(eventID string, comment domain.Message) error {
	seq, err := c.sequence.Next()
	if err != nil {
		return err
	}
	key := fmt.Sprintf("comment:%s:%019d", eventID, seq)
	bytes, err := json.Marshal(comment)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetComments returns the comments of an event, oldest first, starting after cursor.
// The returned cursor is nil once the last page has been read.
func (c *CommentRepository) GetComments(eventID string, cursor *string) ([]domain.Message, *string, error) {
	var comments []domain.Message
	var lastKey string
	var more bool
	prefixStr := fmt.Sprintf("comment:%s:", eventID)
	prefix := []byte(prefixStr)

	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if c.limitComments != nil && len(comments) == *c.limitComments {
				c.log.Debug(fmt.Sprintf("Maximum of %d comments reached", *c.limitComments))
				more = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(value []byte) error {
				var comment domain.Message
				if err := json.Unmarshal(value, &comment); err != nil {
					return err
				}
				comments = append(comments, comment)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if !more {
		return comments, nil, nil
	}
	return comments, &lastKey, nil
}

// AllComments walks every page of an event's comments.
func AllComments(repository ICommentRepository, eventID string) ([]domain.Message, error) {
	var all []domain.Message
	var cursor *string
	for {
		page, next, err := repository.GetComments(eventID, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == nil || len(page) == 0 {
			return all, nil
		}
		cursor = next
	}
}

func (c *CommentRepository) Close() error {
	return c.sequence.Release()
}
