//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"companion-lab/domain/event"
	"context"
)

// EventSink consumes domain events published after a state transition.
// Sinks run synchronously, in registration order.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
