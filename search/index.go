//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_event_index.go -package=mocks
package search

import (
	"companion-lab/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
)

const (
	fieldTitle       = "title"
	fieldDestination = "destination"
	fieldDescription = "description"
	fieldTag         = "tag"
	fieldStatus      = "status"
)

type IEventIndex interface {
	Index(event domain.TripEvent) error
	Search(ctx context.Context, query *Query) ([]string, error)
	Clear(ctx context.Context) error
}

// EventIndex keeps a full-text index of events. Documents are keyed by event id,
// re-indexing an event replaces its document.
type EventIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewEventIndex(writer *bluge.Writer, log *slog.Logger) *EventIndex {
	return &EventIndex{writer: writer, log: log}
}

func (i *EventIndex) Index(event domain.TripEvent) error {
	doc := bluge.NewDocument(event.ID).
		AddField(bluge.NewTextField(fieldTitle, event.Title)).
		AddField(bluge.NewTextField(fieldDestination, event.Destination)).
		AddField(bluge.NewTextField(fieldDescription, event.Description)).
		AddField(bluge.NewKeywordField(fieldStatus, string(event.Status)))
	for _, tag := range event.Tags {
		doc.AddField(bluge.NewKeywordField(fieldTag, tag))
	}
	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index event %s: %w", event.ID, err)
	}
	return nil
}

// Search returns the ids of the matching events, best match first.
// Every term must appear in one of the text fields.
func (i *EventIndex) Search(ctx context.Context, query *Query) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	request := bluge.NewTopNSearch(query.Limit, buildQuery(query))
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query.RawInput, err)
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	i.log.Debug("Event search", "query", query.RawInput, "hits", len(ids))
	return ids, nil
}

// Clear drops every document from the index.
func (i *EventIndex) Clear(ctx context.Context) error {
	reader, err := i.writer.Reader()
	if err != nil {
		return fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	count, err := reader.Count()
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if count == 0 {
		return nil
	}
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(int(count), bluge.NewMatchAllQuery()))
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	batch := bluge.NewBatch()
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				batch.Delete(bluge.Identifier(value))
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return err
	}
	if err = i.writer.Batch(batch); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	i.log.Debug("Event index cleared", "documents", count)
	return nil
}

func buildQuery(query *Query) bluge.Query {
	root := bluge.NewBooleanQuery()
	if query.Terms == "" {
		root.AddMust(bluge.NewMatchAllQuery())
	} else {
		text := bluge.NewBooleanQuery().SetMinShould(1)
		for _, field := range []string{fieldTitle, fieldDestination, fieldDescription} {
			text.AddShould(bluge.NewMatchQuery(query.Terms).
				SetField(field).
				SetOperator(bluge.MatchQueryOperatorAnd))
		}
		root.AddMust(text)
	}
	if query.Tag != "" {
		root.AddMust(bluge.NewTermQuery(query.Tag).SetField(fieldTag))
	}
	return root
}
