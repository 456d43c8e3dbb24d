package services

import (
	"companion-lab/auth"
	"companion-lab/domain"
	"companion-lab/errors"
	"companion-lab/search"
	"companion-lab/store"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

type IEventService interface {
	List(tag string) []domain.TripEvent
	Get(eventID string) (domain.TripEvent, error)
	Create(ctx context.Context, organizer domain.UserProfile, request auth.CreateEventRequest) (domain.TripEvent, error)
	Apply(ctx context.Context, user domain.UserProfile, eventID, intro string) (domain.TripEvent, error)
	Approve(ctx context.Context, organizer domain.UserProfile, eventID, applicantID string) (domain.TripEvent, error)
	Reject(ctx context.Context, organizer domain.UserProfile, eventID, applicantID string) (domain.TripEvent, error)
	Search(ctx context.Context, input string) ([]domain.TripEvent, error)
	Reindex(ctx context.Context) error
}

type EventService struct {
	store *store.Store
	index search.IEventIndex
	log   *slog.Logger
}

func NewEventService(store *store.Store, index search.IEventIndex, log *slog.Logger) *EventService {
	return &EventService{store: store, index: index, log: log}
}

// List returns the events carrying tag, every event when tag is empty.
func (s *EventService) List(tag string) []domain.TripEvent {
	events := s.store.Snapshot().Events
	if tag == "" {
		return events
	}
	return lo.Filter(events, func(e domain.TripEvent, _ int) bool { return e.HasTag(tag) })
}

func (s *EventService) Get(eventID string) (domain.TripEvent, error) {
	e, ok := s.store.Snapshot().Event(eventID)
	if !ok {
		return domain.TripEvent{}, errors.ErrEventNotFound
	}
	return e, nil
}

func (s *EventService) Create(ctx context.Context, organizer domain.UserProfile, request auth.CreateEventRequest) (domain.TripEvent, error) {
	if err := auth.Validate(request); err != nil {
		return domain.TripEvent{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	state, err := s.store.Dispatch(ctx, domain.CreateEventCommand{Event: domain.TripEvent{
		Title:       request.Title,
		Description: request.Description,
		Destination: request.Destination,
		Date:        request.Date,
		Tags:        request.Tags,
		AgeRange:    lo.Ternary(request.AgeRange == "", "不限", request.AgeRange),
		GenderReq:   lo.Ternary(request.GenderReq == "", "不限", request.GenderReq),
		Organizer:   organizer,
		Capacity:    request.Capacity,
	}})
	if err != nil {
		return domain.TripEvent{}, err
	}
	return state.Events[0], nil
}

func (s *EventService) Apply(ctx context.Context, user domain.UserProfile, eventID, intro string) (domain.TripEvent, error) {
	if err := auth.Validate(auth.ApplyRequest{Intro: intro}); err != nil {
		return domain.TripEvent{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return s.dispatch(ctx, eventID, domain.ApplyCommand{EventID: eventID, Applicant: user, Intro: intro})
}

func (s *EventService) Approve(ctx context.Context, organizer domain.UserProfile, eventID, applicantID string) (domain.TripEvent, error) {
	return s.dispatch(ctx, eventID, domain.DecideApplicationCommand{EventID: eventID, Organizer: organizer, ApplicantID: applicantID, Approve: true})
}

func (s *EventService) Reject(ctx context.Context, organizer domain.UserProfile, eventID, applicantID string) (domain.TripEvent, error) {
	return s.dispatch(ctx, eventID, domain.DecideApplicationCommand{EventID: eventID, Organizer: organizer, ApplicantID: applicantID})
}

// Search runs a full-text query, e.g. "爬山 --tag 运动", and returns the
// matching events in relevance order.
func (s *EventService) Search(ctx context.Context, input string) ([]domain.TripEvent, error) {
	ids, err := s.index.Search(ctx, search.NewSearchQuery(input))
	if err != nil {
		return nil, err
	}
	state := s.store.Snapshot()
	return lo.FilterMap(ids, func(id string, _ int) (domain.TripEvent, bool) {
		return state.Event(id)
	}), nil
}

// Reindex rebuilds the search index from the known events. Documents left
// from a previous run are dropped first.
func (s *EventService) Reindex(ctx context.Context) error {
	if err := s.index.Clear(ctx); err != nil {
		return err
	}
	events := s.store.Snapshot().Events
	for _, e := range events {
		if err := s.index.Index(e); err != nil {
			return err
		}
	}
	s.log.Info("Events indexed", "count", len(events))
	return nil
}

func (s *EventService) dispatch(ctx context.Context, eventID string, cmd domain.Command) (domain.TripEvent, error) {
	state, err := s.store.Dispatch(ctx, cmd)
	if err != nil {
		return domain.TripEvent{}, err
	}
	e, _ := state.Event(eventID)
	return e, nil
}
