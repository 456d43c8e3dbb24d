package sink

import (
	"companion-lab/domain"
	"companion-lab/domain/event"
	"companion-lab/repositories"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// NotificationSink turns domain events into inbox notifications.
// Nobody is notified of their own action.
type NotificationSink struct {
	repository repositories.INotificationRepository
	log        *slog.Logger
}

func NewNotificationSink(repository repositories.INotificationRepository, log *slog.Logger) NotificationSink {
	return NotificationSink{repository: repository, log: log}
}

func (n NotificationSink) Consume(_ context.Context, e event.DomainEvent) error {
	notification, ok := n.toNotification(e)
	if !ok {
		return nil
	}
	notification.ID = uuid.NewString()
	notification.Time = domain.JustNow
	n.log.Debug("Notify", "recipient", notification.RecipientID, "type", notification.Type)
	return n.repository.Store(notification)
}

func (n NotificationSink) toNotification(e event.DomainEvent) (domain.Notification, bool) {
	switch evt := e.(type) {
	case event.QuestionAsked:
		return commentNotification(evt.OrganizerID, evt.EventID, evt.Message), true
	case event.ReplyPosted:
		if evt.Message.AuthorID != evt.OrganizerID {
			return commentNotification(evt.OrganizerID, evt.EventID, evt.Message), true
		}
		return domain.Notification{
			RecipientID:    evt.CounterpartID,
			Type:           domain.ReplyNotification,
			Title:          "收到回复",
			Content:        quote(evt.Message.Content),
			RelatedEventID: evt.EventID,
			FromUser:       authorOf(evt.Message),
		}, true
	case event.ApplicationReceived:
		return domain.Notification{
			RecipientID:    evt.OrganizerID,
			Type:           domain.ApplicationReceivedNotification,
			Title:          "收到报名申请",
			Content:        quote(fmt.Sprintf("%s申请加入您的‘%s’", evt.Applicant.UserName, evt.EventTitle)),
			RelatedEventID: evt.EventID,
			FromUser:       &domain.Display{Name: evt.Applicant.UserName, Avatar: evt.Applicant.UserAvatar},
		}, true
	case event.ApplicationDecided:
		content := fmt.Sprintf("恭喜！您申请加入‘%s’已通过。", evt.EventTitle)
		if evt.Applicant.Status == domain.Rejected {
			content = fmt.Sprintf("很遗憾，您申请加入‘%s’未通过。", evt.EventTitle)
		}
		return domain.Notification{
			RecipientID:    evt.Applicant.UserID,
			Type:           domain.ApplicationResultNotification,
			Title:          "申请结果通知",
			Content:        quote(content),
			RelatedEventID: evt.EventID,
		}, true
	case event.PostLiked:
		if !evt.Liked || evt.Liker.ID == evt.AuthorID {
			return domain.Notification{}, false
		}
		return teamNotification(evt.AuthorID, evt.PostID, fmt.Sprintf("%s点赞了您的精彩瞬间，快去看看吧！", evt.Liker.Name)), true
	case event.PostCommented:
		if evt.Comment.AuthorID == evt.AuthorID {
			return domain.Notification{}, false
		}
		return teamNotification(evt.AuthorID, evt.PostID, fmt.Sprintf("%s评论了您的精彩瞬间：%s", evt.Comment.AuthorName, evt.Comment.Content)), true
	default:
		return domain.Notification{}, false
	}
}

func commentNotification(recipientID, eventID string, message domain.Message) domain.Notification {
	return domain.Notification{
		RecipientID:    recipientID,
		Type:           domain.CommentNotification,
		Title:          "收到新留言",
		Content:        quote(message.Content),
		RelatedEventID: eventID,
		FromUser:       authorOf(message),
	}
}

func teamNotification(recipientID, postID, content string) domain.Notification {
	return domain.Notification{
		RecipientID:   recipientID,
		Type:          domain.TeamInteractionNotification,
		Title:         "队友互动",
		Content:       quote(content),
		RelatedPostID: postID,
	}
}

func authorOf(message domain.Message) *domain.Display {
	return &domain.Display{Name: message.AuthorName, Avatar: message.AuthorAvatar}
}

func quote(s string) string {
	return "“" + s + "”"
}
