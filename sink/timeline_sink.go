package sink

import (
	"campus-hub/domain/event"
	"context"
	"sync"
)

// Timeline keeps the notices shown to the user, most recent last.
type Timeline struct {
	mu      sync.Mutex
	Notices []Notice
}

type Notice struct {
	Event   string
	Message string
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch evt := e.(type) {
	case event.AddedToCart:
		t.Notices = append(t.Notices, Notice{Event: e.Name(), Message: evt.ProductName + " added to cart!"})
	case event.CheckoutConfirmed:
		t.Notices = append(t.Notices, Notice{
			Event:   e.Name(),
			Message: "Payment confirmed using " + evt.Method.String() + "! Order placed for $" + evt.Total.StringFixed(2) + ".",
		})
	case event.ItemListed:
		t.Notices = append(t.Notices, Notice{Event: e.Name(), Message: "Item \"" + evt.ItemName + "\" listed."})
	}
	return nil
}

// Drain returns the pending notices and empties the timeline.
func (t *Timeline) Drain() []Notice {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.Notices
	t.Notices = nil
	return out
}

