package sink

import (
	"companion-lab/domain/event"
	"companion-lab/search"
	"context"
	"log/slog"
)

// SearchSink keeps the event index in line with the store.
type SearchSink struct {
	index search.IEventIndex
	log   *slog.Logger
}

func NewSearchSink(index search.IEventIndex, log *slog.Logger) SearchSink {
	return SearchSink{index: index, log: log}
}

func (s SearchSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.EventCreated:
		return s.index.Index(evt.Event)
	case event.EventUpdated:
		return s.index.Index(evt.Event)
	default:
		return nil
	}
}
