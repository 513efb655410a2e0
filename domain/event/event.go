package event

import (
	"campus-hub/domain"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DomainEvent interface {
	Name() string
	OccurredAt() time.Time
}

type LoggedIn struct {
	Identity domain.Identity
	At       time.Time
}

func (e LoggedIn) Name() string          { return "LoggedIn" }
func (e LoggedIn) OccurredAt() time.Time { return e.At }

type LoggedOut struct {
	StudentID string
	At        time.Time
}

func (e LoggedOut) Name() string          { return "LoggedOut" }
func (e LoggedOut) OccurredAt() time.Time { return e.At }

type MessagePosted struct {
	ID       uuid.UUID
	CourseID domain.CourseID
	Author   string
	Content  string
	At       time.Time
}

func (e MessagePosted) Name() string          { return "MessagePosted" }
func (e MessagePosted) OccurredAt() time.Time { return e.At }

type AddedToCart struct {
	ProductID   domain.ProductID
	ProductName string
	Quantity    int
	At          time.Time
}

func (e AddedToCart) Name() string          { return "AddedToCart" }
func (e AddedToCart) OccurredAt() time.Time { return e.At }

type CheckoutConfirmed struct {
	OrderID uuid.UUID
	Method  domain.PaymentMethod
	Total   decimal.Decimal
	At      time.Time
}

func (e CheckoutConfirmed) Name() string          { return "CheckoutConfirmed" }
func (e CheckoutConfirmed) OccurredAt() time.Time { return e.At }

type ItemListed struct {
	ListingID uuid.UUID
	SellerID  string
	ItemName  string
	At        time.Time
}

func (e ItemListed) Name() string          { return "ItemListed" }
func (e ItemListed) OccurredAt() time.Time { return e.At }
