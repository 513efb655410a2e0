package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingDraft is the sell-item form as typed by the user.
type ListingDraft struct {
	Name        string
	Description string
	Price       string
	Category    string
	Image       *FileDescriptor
	PreviewRef  string
}

// Listing is the payload produced by a valid submission.
type Listing struct {
	ID          uuid.UUID
	SellerID    string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageName   string
	SubmittedAt time.Time
}
