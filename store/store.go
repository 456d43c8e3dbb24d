package store

import (
	"companion-lab/contract"
	"companion-lab/domain"
	"companion-lab/domain/event"
	"context"
	"log/slog"
	"sync"
)

// Store owns the application state. Every command is reduced and its
// events published before the next one is accepted.
type Store struct {
	mu    sync.Mutex
	state State
	sinks []contract.EventSink
	log   *slog.Logger
}

func NewStore(initial State, log *slog.Logger, sinks ...contract.EventSink) *Store {
	return &Store{state: initial, sinks: sinks, log: log}
}

// Subscribe registers a sink. Sinks are called in registration order.
func (s *Store) Subscribe(sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sink)
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies cmd to the current state. A rejected command leaves the
// state untouched and publishes nothing. Sink failures are logged, the
// transition is kept.
func (s *Store) Dispatch(ctx context.Context, cmd domain.Command) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, events, err := reduce(s.state, cmd)
	if err != nil {
		s.log.Debug("Command rejected", "command", cmd.CommandName(), "error", err)
		return s.state, err
	}
	s.state = next
	s.publish(ctx, events)
	return next, nil
}

func (s *Store) publish(ctx context.Context, events []event.DomainEvent) {
	for _, e := range events {
		for _, sink := range s.sinks {
			if err := sink.Consume(ctx, e); err != nil {
				s.log.Error("Sink failed", "event", e.Name(), "error", err)
			}
		}
	}
}
