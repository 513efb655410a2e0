package sink

import (
	"campus-hub/domain/event"
	"context"
	"log/slog"
)

// LogSink writes every domain event to the structured log.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Consume(ctx context.Context, e event.DomainEvent) error {
	attrs := []any{"event", e.Name(), "at", e.OccurredAt()}
	switch evt := e.(type) {
	case event.LoggedIn:
		attrs = append(attrs, "student_id", evt.Identity.StudentID)
	case event.LoggedOut:
		attrs = append(attrs, "student_id", evt.StudentID)
	case event.MessagePosted:
		attrs = append(attrs, "course", evt.CourseID, "author", evt.Author)
	case event.AddedToCart:
		attrs = append(attrs, "product", evt.ProductID, "quantity", evt.Quantity)
	case event.CheckoutConfirmed:
		attrs = append(attrs, "order", evt.OrderID, "method", evt.Method.String(), "total", evt.Total.StringFixed(2))
	case event.ItemListed:
		attrs = append(attrs, "listing", evt.ListingID, "seller", evt.SellerID)
	}
	s.log.InfoContext(ctx, "Domain event", attrs...)
	return nil
}
