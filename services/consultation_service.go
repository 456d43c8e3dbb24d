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

type IConsultationService interface {
	Threads(user domain.UserProfile, eventID string) (Consultation, error)
	Ask(ctx context.Context, user domain.UserProfile, eventID, content string) (domain.Message, error)
	Reply(ctx context.Context, user domain.UserProfile, eventID, counterpartID, content string) (domain.Message, error)
	Hydrate(ctx context.Context) error
}

// Consultation is the question and answer section of an event as seen by one user.
type Consultation struct {
	Role    domain.Role  `json:"role"`
	CanAsk  bool         `json:"canAsk"`
	Threads []ThreadView `json:"threads"`
}

type ThreadView struct {
	projection.Thread
	CanReply bool `json:"canReply"`
}

type ConsultationService struct {
	store      *store.Store
	repository repositories.ICommentRepository
	moderator  *moderation.Moderator
	log        *slog.Logger
}

func NewConsultationService(store *store.Store, repository repositories.ICommentRepository, moderator *moderation.Moderator, log *slog.Logger) *ConsultationService {
	return &ConsultationService{store: store, repository: repository, moderator: moderator, log: log}
}

// Threads groups the event consultation per counterpart. Every thread is visible,
// replying is limited to the organizer and the thread owner.
func (s *ConsultationService) Threads(user domain.UserProfile, eventID string) (Consultation, error) {
	e, ok := s.store.Snapshot().Event(eventID)
	if !ok {
		return Consultation{}, errors.ErrEventNotFound
	}
	session := domain.NewSession(user, e)
	threads := projection.BuildThreads(e.Comments, e.Organizer.ID)
	_, hasThread := projection.FindThread(threads, user.ID)

	return Consultation{
		Role:   session.Role,
		CanAsk: session.CanAsk(hasThread),
		Threads: lo.Map(threads, func(t projection.Thread, _ int) ThreadView {
			return ThreadView{Thread: t, CanReply: session.CanReplyTo(t.CounterpartID)}
		}),
	}, nil
}

func (s *ConsultationService) Ask(ctx context.Context, user domain.UserProfile, eventID, content string) (domain.Message, error) {
	content, err := s.moderate(content)
	if err != nil {
		return domain.Message{}, err
	}
	state, err := s.store.Dispatch(ctx, domain.AskQuestionCommand{EventID: eventID, Asker: user, Content: content})
	if err != nil {
		return domain.Message{}, err
	}
	return lastComment(state, eventID), nil
}

func (s *ConsultationService) Reply(ctx context.Context, user domain.UserProfile, eventID, counterpartID, content string) (domain.Message, error) {
	content, err := s.moderate(content)
	if err != nil {
		return domain.Message{}, err
	}
	state, err := s.store.Dispatch(ctx, domain.ReplyInThreadCommand{
		EventID:       eventID,
		Sender:        user,
		CounterpartID: counterpartID,
		Content:       content,
	})
	if err != nil {
		return domain.Message{}, err
	}
	return lastComment(state, eventID), nil
}

// Hydrate restores the persisted consultation of every event. An event with no
// persisted history gets its seeded comments written first.
func (s *ConsultationService) Hydrate(ctx context.Context) error {
	for _, e := range s.store.Snapshot().Events {
		persisted, err := repositories.AllComments(s.repository, e.ID)
		if err != nil {
			return fmt.Errorf("load comments of %s: %w", e.ID, err)
		}
		if len(persisted) == 0 {
			for _, comment := range e.Comments {
				if err = s.repository.StoreComment(e.ID, comment); err != nil {
					return fmt.Errorf("seed comments of %s: %w", e.ID, err)
				}
			}
			continue
		}
		if _, err = s.store.Dispatch(ctx, domain.HydrateCommentsCommand{EventID: e.ID, Comments: persisted}); err != nil {
			return err
		}
		s.log.Debug("Consultation restored", "event", e.ID, "comments", len(persisted))
	}
	return nil
}

func (s *ConsultationService) moderate(content string) (string, error) {
	if err := auth.Validate(auth.MessageRequest{Content: content}); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return s.moderator.Review(content).Content, nil
}

func lastComment(state store.State, eventID string) domain.Message {
	e, _ := state.Event(eventID)
	return e.Comments[len(e.Comments)-1]
}
