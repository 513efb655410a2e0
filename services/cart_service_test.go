package services

import (
	"campus-hub/domain"
	"campus-hub/domain/event"
	"campus-hub/errors"
	"campus-hub/mocks"
	"campus-hub/repositories"
	"campus-hub/sink"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var validCard = domain.PaymentDetails{CardNumber: "4111111111111111", Expiry: "09/28", CVV: "123"}

func newCartFixture(t *testing.T) (*CartService, *Session, *sink.Timeline) {
	t.Helper()
	clock := newFakeClock()
	session := loggedInSession(t, clock)
	timeline := sink.NewTimeline()
	cart := NewCartService(testLogger(), clock, timeline, session, repositories.NewCatalogRepository(clock.Now()))
	return cart, session, timeline
}

func TestCartService_AddToCart(t *testing.T) {
	t.Run("should merge the same product into one line", func(t *testing.T) {
		req := require.New(t)
		cart, _, _ := newCartFixture(t)

		_, err := cart.AddToCart("p1")
		req.NoError(err)
		lines, err := cart.AddToCart("p1")
		req.NoError(err)

		req.Len(lines, 1)
		req.Equal(2, lines[0].Quantity)
		req.True(decimal.NewFromInt(50).Equal(lines[0].Product.Price))
		total, err := cart.Total()
		req.NoError(err)
		req.Equal("100.00", total.StringFixed(2))
	})

	t.Run("should fail on unknown product", func(t *testing.T) {
		req := require.New(t)
		cart, _, timeline := newCartFixture(t)

		_, err := cart.AddToCart("p99")

		req.ErrorIs(err, errors.ErrProductNotFound)
		req.Empty(timeline.Drain())
	})

	t.Run("should announce the added product", func(t *testing.T) {
		req := require.New(t)
		cart, _, timeline := newCartFixture(t)

		_, err := cart.AddToCart("p3")
		req.NoError(err)

		req.Equal([]sink.Notice{{Event: "AddedToCart", Message: "Acoustic Guitar added to cart!"}}, timeline.Drain())
	})
}

func TestCartService_Quantities(t *testing.T) {
	req := require.New(t)
	cart, _, _ := newCartFixture(t)
	for _, id := range []domain.ProductID{"p1", "p2", "p4"} {
		_, err := cart.AddToCart(id)
		req.NoError(err)
	}

	lines, err := cart.SetQuantity("p2", 3)
	req.NoError(err)
	req.Len(lines, 3)
	req.Equal(3, lines[1].Quantity)

	lines, err = cart.SetQuantity("p4", 0)
	req.NoError(err)
	req.Len(lines, 2)

	lines, err = cart.RemoveFromCart("p1")
	req.NoError(err)
	req.Len(lines, 1)
	req.Equal(domain.ProductID("p2"), lines[0].Product.ID)

	count, err := cart.ItemCount()
	req.NoError(err)
	req.Equal(3, count)
	total, err := cart.Total()
	req.NoError(err)
	req.Equal("90.00", total.StringFixed(2))
}

func TestCartService_Checkout(t *testing.T) {
	testCases := []struct {
		name     string
		method   domain.PaymentMethod
		details  domain.PaymentDetails
		expected error
	}{
		{"card", domain.PaymentMethodCard, validCard, nil},
		{"wallet", domain.PaymentMethodMobileWallet, domain.PaymentDetails{WalletNumber: "01712345678"}, nil},
		{"no method", domain.PaymentMethodUnset, validCard, errors.ErrNoMethodSelected},
		{"short card", domain.PaymentMethodCard, domain.PaymentDetails{CardNumber: "411111111111111", Expiry: "09/28", CVV: "123"}, errors.ErrInvalidCardNumber},
		{"month 13", domain.PaymentMethodCard, domain.PaymentDetails{CardNumber: "4111111111111111", Expiry: "13/28", CVV: "123"}, errors.ErrInvalidExpiry},
		{"wallet prefix", domain.PaymentMethodMobileWallet, domain.PaymentDetails{WalletNumber: "02712345678"}, errors.ErrInvalidWalletNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			cart, _, _ := newCartFixture(t)
			_, err := cart.AddToCart("p1")
			req.NoError(err)
			_, err = cart.AddToCart("p2")
			req.NoError(err)

			receipt, err := cart.Checkout(tc.method, tc.details)

			count, countErr := cart.ItemCount()
			req.NoError(countErr)
			if tc.expected != nil {
				req.ErrorIs(err, tc.expected)
				req.Equal(2, count)
				return
			}
			req.NoError(err)
			req.Equal(tc.method, receipt.Method)
			req.Equal("80.00", receipt.Total.StringFixed(2))
			req.Len(receipt.Lines, 2)
			req.Zero(count)
		})
	}
}

func TestCartService_Checkout_Empty_Cart(t *testing.T) {
	req := require.New(t)
	cart, _, _ := newCartFixture(t)

	_, err := cart.Checkout(domain.PaymentMethodCard, validCard)

	req.ErrorIs(err, errors.ErrEmptyCart)
}

func TestCartService_Checkout_Publishes_Confirmation(t *testing.T) {
	req := require.New(t)
	cart, _, timeline := newCartFixture(t)
	_, err := cart.AddToCart("p1")
	req.NoError(err)
	timeline.Drain()

	_, err = cart.Checkout(domain.PaymentMethodMobileWallet, domain.PaymentDetails{WalletNumber: "01712345678"})

	req.NoError(err)
	req.Equal([]sink.Notice{{
		Event:   "CheckoutConfirmed",
		Message: "Payment confirmed using bKash! Order placed for $50.00.",
	}}, timeline.Drain())
}

func TestCartService_Logout_Empties_Cart(t *testing.T) {
	req := require.New(t)
	cart, session, _ := newCartFixture(t)
	_, err := cart.AddToCart("p1")
	req.NoError(err)

	session.Logout()
	_, err = cart.Lines()
	req.ErrorIs(err, errors.ErrNotAuthenticated)

	_, err = session.Login("1234567", "1234567@iub.edu.bd", "A B")
	req.NoError(err)
	lines, err := cart.Lines()
	req.NoError(err)
	req.Empty(lines)
}

func TestCartService_Requires_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	session := mocks.NewMockISession(ctrl)
	catalog := mocks.NewMockICatalogRepository(ctrl)
	eventSink := mocks.NewMockEventSink(ctrl)

	session.EXPECT().OnLogout(gomock.Any()).Times(1)
	session.EXPECT().Require().Return(domain.Identity{}, errors.ErrNotAuthenticated).AnyTimes()
	catalog.EXPECT().Product(gomock.Any()).Times(0)
	eventSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Times(0)

	cart := NewCartService(testLogger(), newFakeClock(), eventSink, session, catalog)

	_, err := cart.AddToCart("p1")
	req.ErrorIs(err, errors.ErrNotAuthenticated)
	_, err = cart.Checkout(domain.PaymentMethodCard, validCard)
	req.ErrorIs(err, errors.ErrNotAuthenticated)
	_, err = cart.Total()
	req.ErrorIs(err, errors.ErrNotAuthenticated)
}

func TestCartService_AddToCart_Event(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	clock := newFakeClock()
	session := mocks.NewMockISession(ctrl)
	catalog := mocks.NewMockICatalogRepository(ctrl)
	eventSink := mocks.NewMockEventSink(ctrl)
	product := domain.Product{ID: "p7", Name: "Lab Coat", Price: decimal.RequireFromString("12.50")}

	session.EXPECT().OnLogout(gomock.Any()).Times(1)
	session.EXPECT().Require().Return(domain.Identity{ID: "1234567"}, nil).Times(2)
	catalog.EXPECT().Product(domain.ProductID("p7")).Return(product, nil).Times(2)
	gomock.InOrder(
		eventSink.EXPECT().Consume(gomock.Any(), event.AddedToCart{ProductID: "p7", ProductName: "Lab Coat", Quantity: 1, At: clock.Now()}).Return(nil),
		eventSink.EXPECT().Consume(gomock.Any(), event.AddedToCart{ProductID: "p7", ProductName: "Lab Coat", Quantity: 2, At: clock.Now()}).Return(nil),
	)

	cart := NewCartService(testLogger(), clock, eventSink, session, catalog)
	_, err := cart.AddToCart("p7")
	req.NoError(err)
	_, err = cart.AddToCart("p7")
	req.NoError(err)
}

func TestCartService_Checkout_Stamps_Clock_Times(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	addedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	paidAt := addedAt.Add(3 * time.Minute)
	clock := mocks.NewMockClock(ctrl)
	session := mocks.NewMockISession(ctrl)
	catalog := mocks.NewMockICatalogRepository(ctrl)
	eventSink := mocks.NewMockEventSink(ctrl)
	product := domain.Product{ID: "p7", Name: "Lab Coat", Price: decimal.RequireFromString("12.50")}

	session.EXPECT().OnLogout(gomock.Any()).Times(1)
	session.EXPECT().Require().Return(domain.Identity{ID: "1234567", StudentID: "1234567"}, nil).Times(2)
	catalog.EXPECT().Product(domain.ProductID("p7")).Return(product, nil).Times(1)
	gomock.InOrder(
		clock.EXPECT().Now().Return(addedAt).Times(1),
		clock.EXPECT().Now().Return(paidAt).Times(1),
	)
	var confirmed event.CheckoutConfirmed
	gomock.InOrder(
		eventSink.EXPECT().Consume(gomock.Any(), event.AddedToCart{ProductID: "p7", ProductName: "Lab Coat", Quantity: 1, At: addedAt}).Return(nil),
		eventSink.EXPECT().Consume(gomock.Any(), gomock.AssignableToTypeOf(event.CheckoutConfirmed{})).
			DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
				confirmed = e.(event.CheckoutConfirmed)
				return nil
			}),
	)

	cart := NewCartService(testLogger(), clock, eventSink, session, catalog)
	_, err := cart.AddToCart("p7")
	req.NoError(err)
	receipt, err := cart.Checkout(domain.PaymentMethodCard, validCard)

	req.NoError(err)
	req.Equal(paidAt, receipt.PaidAt)
	req.Equal(paidAt, confirmed.At)
	req.Equal(receipt.OrderID, confirmed.OrderID)
	req.Equal("12.50", confirmed.Total.StringFixed(2))
}
