//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"campus-hub/domain/event"
	"context"
	"time"
)

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Clock is the time source of the services, replaced in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
