package services

import (
	"companion-lab/auth"
	"companion-lab/domain"
	"companion-lab/errors"
	"companion-lab/moderation"
	"companion-lab/projection"
	"companion-lab/repositories"
	"companion-lab/store"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

type IInboxService interface {
	Notifications(userID string) ([]domain.Notification, error)
	UnreadCount(userID string) (int, error)
	MarkRead(userID, notificationID string) (domain.Notification, error)
	Chats(userID string) []domain.ChatSession
	ChatMessages(userID, chatID string) (*projection.Timeline, error)
	Send(ctx context.Context, user domain.UserProfile, chatID, content string) (domain.ChatMessage, error)
	Seed(notifications []domain.Notification) error
}

type InboxService struct {
	store      *store.Store
	repository repositories.INotificationRepository
	moderator  *moderation.Moderator
	log        *slog.Logger
}

func NewInboxService(store *store.Store, repository repositories.INotificationRepository, moderator *moderation.Moderator, log *slog.Logger) *InboxService {
	return &InboxService{store: store, repository: repository, moderator: moderator, log: log}
}

// Notifications are listed newest first.
func (s *InboxService) Notifications(userID string) ([]domain.Notification, error) {
	return s.repository.List(userID)
}

func (s *InboxService) UnreadCount(userID string) (int, error) {
	notifications, err := s.repository.List(userID)
	if err != nil {
		return 0, err
	}
	return lo.CountBy(notifications, func(n domain.Notification) bool { return !n.Read }), nil
}

func (s *InboxService) MarkRead(userID, notificationID string) (domain.Notification, error) {
	return s.repository.MarkRead(userID, notificationID)
}

// Chats lists the group chats of the teams the user belongs to.
func (s *InboxService) Chats(userID string) []domain.ChatSession {
	state := s.store.Snapshot()
	return lo.Filter(state.Chats, func(c domain.ChatSession, _ int) bool {
		e, found := state.Event(c.EventID)
		return found && e.IsMember(userID)
	})
}

func (s *InboxService) ChatMessages(userID, chatID string) (*projection.Timeline, error) {
	state := s.store.Snapshot()
	chat, ok := state.Chat(chatID)
	if !ok {
		return nil, errors.ErrChatNotFound
	}
	if e, found := state.Event(chat.EventID); found && !e.IsMember(userID) {
		return nil, errors.ErrForbidden
	}
	return projection.NewTimeline(userID, state.Messages(chatID)), nil
}

func (s *InboxService) Send(ctx context.Context, user domain.UserProfile, chatID, content string) (domain.ChatMessage, error) {
	if err := auth.Validate(auth.MessageRequest{Content: content}); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	state, err := s.store.Dispatch(ctx, domain.SendChatMessageCommand{
		ChatID:  chatID,
		Sender:  user,
		Content: s.moderator.Review(content).Content,
	})
	if err != nil {
		return domain.ChatMessage{}, err
	}
	messages := state.Messages(chatID)
	return messages[len(messages)-1], nil
}

// Seed stores the given notifications for every recipient whose inbox is still empty.
func (s *InboxService) Seed(notifications []domain.Notification) error {
	for recipient, batch := range lo.GroupBy(notifications, func(n domain.Notification) string { return n.RecipientID }) {
		existing, err := s.repository.List(recipient)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		for _, n := range batch {
			if err = s.repository.Store(n); err != nil {
				return err
			}
		}
		s.log.Debug("Inbox seeded", "recipient", recipient, "count", len(batch))
	}
	return nil
}
