package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductID string

type Product struct {
	ID          ProductID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageRef    string
	Seller      Identity
	PostDate    time.Time
	Category    string
}
