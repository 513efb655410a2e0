package services

import (
	"campus-hub/contract"
	"campus-hub/domain/event"
	"context"
	"log/slog"
)

// publish hands e to sink. Delivery failures are logged, never returned.
func publish(log *slog.Logger, sink contract.EventSink, e event.DomainEvent) {
	if sink == nil {
		return
	}
	if err := sink.Consume(context.Background(), e); err != nil {
		log.Warn("Event not delivered", "event", e.Name(), "error", err)
	}
}
