package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod int

const (
	// PaymentMethodUnset means no method has been chosen yet.
	PaymentMethodUnset PaymentMethod = iota
	PaymentMethodCard
	PaymentMethodMobileWallet
)

func (p PaymentMethod) String() string {
	switch p {
	case PaymentMethodCard:
		return "Card"
	case PaymentMethodMobileWallet:
		return "bKash"
	default:
		return "None"
	}
}

// PaymentDetails carries whatever the checkout form collected. Only the
// fields of the selected method are looked at.
type PaymentDetails struct {
	CardNumber   string
	Expiry       string
	CVV          string
	WalletNumber string
}

// Receipt is the outcome of a confirmed mock payment.
type Receipt struct {
	OrderID uuid.UUID
	Method  PaymentMethod
	Lines   []CartLine
	Total   decimal.Decimal
	PaidAt  time.Time
}
