package sink

import (
	"companion-lab/domain/event"
	"companion-lab/repositories"
	"context"
	"fmt"
	"log/slog"
)

// CommentSink persists every consultation message as it is posted.
type CommentSink struct {
	repository repositories.ICommentRepository
	log        *slog.Logger
}

func NewCommentSink(repository repositories.ICommentRepository, log *slog.Logger) CommentSink {
	return CommentSink{repository: repository, log: log}
}

func (c CommentSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.QuestionAsked:
		return c.repository.StoreComment(evt.EventID, evt.Message)
	case event.ReplyPosted:
		return c.repository.StoreComment(evt.EventID, evt.Message)
	default:
		c.log.Debug(fmt.Sprintf("Not a consultation event : %s", e.Name()))
		return nil
	}
}
