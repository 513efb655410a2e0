package sink

import (
	"campus-hub/contract"
	"campus-hub/domain/event"
	"context"
	"log/slog"
)

// Fanout broadcasts domain events to several in-process sinks.
// A failing sink is logged and does not stop the others.
type Fanout struct {
	log   *slog.Logger
	sinks []contract.EventSink
}

func NewFanout(log *slog.Logger, sinks ...contract.EventSink) *Fanout {
	return &Fanout{log: log, sinks: sinks}
}

func (f *Fanout) Add(sinks ...contract.EventSink) *Fanout {
	f.sinks = append(f.sinks, sinks...)
	return f
}

func (f *Fanout) Consume(ctx context.Context, e event.DomainEvent) error {
	for _, s := range f.sinks {
		if err := s.Consume(ctx, e); err != nil {
			f.log.Warn("Sink failed to consume event", "event", e.Name(), "error", err)
		}
	}
	return nil
}
