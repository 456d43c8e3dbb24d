package repositories

import (
	"companion-lab/domain"
	"companion-lab/errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_List_Newest_First(t *testing.T) {
	req := require.New(t)
	repository, err := NewNotificationRepository(openDB(t), slog.Default())
	req.NoError(err)
	defer repository.Close()

	req.NoError(repository.Store(domain.Notification{ID: "n1", RecipientID: "o1", Type: domain.CommentNotification}))
	req.NoError(repository.Store(domain.Notification{ID: "n2", RecipientID: "o1", Type: domain.ApplicationReceivedNotification}))
	req.NoError(repository.Store(domain.Notification{ID: "n3", RecipientID: "o2", Type: domain.ReplyNotification}))

	notifications, err := repository.List("o1")

	req.NoError(err)
	req.Len(notifications, 2)
	req.Equal("n2", notifications[0].ID)
	req.Equal("n1", notifications[1].ID)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	req := require.New(t)
	repository, err := NewNotificationRepository(openDB(t), slog.Default())
	req.NoError(err)
	defer repository.Close()
	req.NoError(repository.Store(domain.Notification{ID: "n1", RecipientID: "o1"}))

	t.Run("should mark the notification as read", func(t *testing.T) {
		updated, err := repository.MarkRead("o1", "n1")
		req.NoError(err)
		req.True(updated.Read)

		notifications, err := repository.List("o1")
		req.NoError(err)
		req.True(notifications[0].Read)
	})

	t.Run("should not leak notifications of another user", func(t *testing.T) {
		_, err := repository.MarkRead("o2", "n1")
		req.ErrorIs(err, errors.ErrNotificationNotFound)
	})

	t.Run("should fail on unknown notification", func(t *testing.T) {
		_, err := repository.MarkRead("o1", "missing")
		req.ErrorIs(err, errors.ErrNotificationNotFound)
	})
}

func TestImageRepository(t *testing.T) {
	req := require.New(t)
	repository := NewImageRepository(openDB(t))
	image := Image{ID: "i1", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}, UploadedBy: "u1"}

	req.NoError(repository.StoreImage(image))
	fetched, err := repository.GetImage("i1")
	req.NoError(err)
	req.Equal(image.Data, fetched.Data)
	req.Equal("image/png", fetched.ContentType)

	_, err = repository.GetImage("missing")
	req.ErrorIs(err, errors.ErrImageNotFound)
}
