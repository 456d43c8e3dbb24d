package services

import (
	"companion-lab/domain"
	"companion-lab/errors"
	"companion-lab/fixtures"
	"companion-lab/mocks"
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConsultationService_Threads(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewConsultationService(newStore(), mocks.NewMockICommentRepository(ctrl), newModerator(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	t.Run("should let the organizer reply everywhere", func(t *testing.T) {
		req := require.New(t)
		consultation, err := svc.Threads(fixtures.Chen, "e2")

		req.NoError(err)
		req.Equal(domain.Organizer, consultation.Role)
		req.False(consultation.CanAsk)
		req.Len(consultation.Threads, 2)
		req.Equal(fixtures.Li.ID, consultation.Threads[0].CounterpartID)
		req.Len(consultation.Threads[0].Messages, 4)
		req.Equal(fixtures.Zhao.ID, consultation.Threads[1].CounterpartID)
		for _, thread := range consultation.Threads {
			req.True(thread.CanReply)
		}
	})

	t.Run("should show every thread but only allow replying to its own", func(t *testing.T) {
		req := require.New(t)
		consultation, err := svc.Threads(fixtures.Li, "e2")

		req.NoError(err)
		req.Equal(domain.Member, consultation.Role)
		req.False(consultation.CanAsk)
		req.True(consultation.Threads[0].CanReply)
		req.False(consultation.Threads[1].CanReply)
	})

	t.Run("should let a newcomer ask", func(t *testing.T) {
		consultation, err := svc.Threads(fixtures.Xiao, "e2")
		require.NoError(t, err)
		require.True(t, consultation.CanAsk)
	})

	t.Run("should fail on unknown event", func(t *testing.T) {
		_, err := svc.Threads(fixtures.Xiao, "nope")
		require.ErrorIs(t, err, errors.ErrEventNotFound)
	})
}

func TestConsultationService_Ask_And_Reply(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	svc := NewConsultationService(newStore(), mocks.NewMockICommentRepository(ctrl), newModerator(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	t.Run("should censor the question before storing it", func(t *testing.T) {
		req := require.New(t)
		message, err := svc.Ask(ctx, verified(fixtures.Xiao), "e1", "是不是骗子局？")

		req.NoError(err)
		req.Equal("是不是**局？", message.Content)
		req.Equal(fixtures.Xiao.ID, message.AuthorID)
	})

	t.Run("should address the organizer reply", func(t *testing.T) {
		req := require.New(t)
		message, err := svc.Reply(ctx, verified(fixtures.Wang), "e1", fixtures.Xiao.ID, "不是的，放心")

		req.NoError(err)
		req.Equal(fixtures.Xiao.ID, message.ReplyToID)
		req.Equal(fixtures.Xiao.Name, message.ReplyToName)

		consultation, err := svc.Threads(fixtures.Xiao, "e1")
		req.NoError(err)
		req.Len(consultation.Threads, 1)
		req.Len(consultation.Threads[0].Messages, 2)
	})

	t.Run("should refuse a blank question", func(t *testing.T) {
		_, err := svc.Ask(ctx, verified(fixtures.Zhao), "e1", "   ")
		require.ErrorIs(t, err, errors.ErrInvalidPayload)
	})

	t.Run("should refuse a second question", func(t *testing.T) {
		_, err := svc.Ask(ctx, verified(fixtures.Xiao), "e1", "还有一个问题")
		require.ErrorIs(t, err, errors.ErrThreadExists)
	})
}

func TestConsultationService_Hydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("should seed the repository on first start", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockICommentRepository(ctrl)
		svc := NewConsultationService(newStore(), repository, newModerator(t), logs.GetLoggerFromLevel(slog.LevelDebug))

		repository.EXPECT().GetComments(gomock.Any(), nil).Return(nil, nil, nil).Times(3)
		// e2 holds 5 seeded comments, e6 one
		repository.EXPECT().StoreComment("e2", gomock.Any()).Return(nil).Times(5)
		repository.EXPECT().StoreComment("e6", gomock.Any()).Return(nil).Times(1)

		req.NoError(svc.Hydrate(ctx))
	})

	t.Run("should restore persisted history", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockICommentRepository(ctrl)
		svc := NewConsultationService(newStore(), repository, newModerator(t), logs.GetLoggerFromLevel(slog.LevelDebug))
		persisted := append(fixtures.Events()[2].Comments, domain.Message{
			ID: "r1", AuthorID: fixtures.Zhang.ID, Content: "可以", ReplyToID: fixtures.Xiao.ID,
		})
		cursor := "page-2"

		repository.EXPECT().GetComments("e1", nil).Return(nil, nil, nil)
		repository.EXPECT().GetComments("e2", nil).Return(fixtures.Consultation(), nil, nil)
		repository.EXPECT().GetComments("e6", nil).Return(persisted[:1], &cursor, nil)
		repository.EXPECT().GetComments("e6", &cursor).Return(persisted[1:], nil, nil)

		req.NoError(svc.Hydrate(ctx))

		consultation, err := svc.Threads(fixtures.Zhang, "e6")
		req.NoError(err)
		req.Len(consultation.Threads, 1)
		req.Len(consultation.Threads[0].Messages, 2)
	})
}
