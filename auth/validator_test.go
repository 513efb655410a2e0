package auth

import (
	"campus-hub/domain"
	"campus-hub/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const domainSuffix = "iub.edu.bd"

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr error
	}{
		{"Valid request", LoginRequest{"1234567", "1234567@iub.edu.bd", "A B"}, nil},
		{"Foreign domain", LoginRequest{"1234567", "1234567@other.edu", "A B"}, errors.ErrInvalidDomain},
		{"Lookalike domain", LoginRequest{"1234567", "1234567@iub.edu.bd.evil.com", "A B"}, errors.ErrInvalidDomain},
		{"Domain without at sign", LoginRequest{"1234567", "1234567iub.edu.bd", "A B"}, errors.ErrInvalidDomain},
		{"Empty email", LoginRequest{"1234567", "", "A B"}, errors.ErrInvalidDomain},
		{"Empty student id", LoginRequest{"", "1234567@iub.edu.bd", "A B"}, errors.ErrMissingField},
		{"Blank student id", LoginRequest{"   ", "1234567@iub.edu.bd", "A B"}, errors.ErrMissingField},
		{"Blank name", LoginRequest{"1234567", "1234567@iub.edu.bd", "\t "}, errors.ErrMissingField},
		{"Domain is checked before fields", LoginRequest{"", "x@other.edu", ""}, errors.ErrInvalidDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.req, domainSuffix)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePayment_Card(t *testing.T) {
	valid := domain.PaymentDetails{CardNumber: "4111111111111111", Expiry: "12/27", CVV: "123"}

	tests := []struct {
		name    string
		mutate  func(d *domain.PaymentDetails)
		wantErr error
	}{
		{"Valid card", func(d *domain.PaymentDetails) {}, nil},
		{"Four digit CVV", func(d *domain.PaymentDetails) { d.CVV = "1234" }, nil},
		{"January", func(d *domain.PaymentDetails) { d.Expiry = "01/30" }, nil},
		{"15 digits", func(d *domain.PaymentDetails) { d.CardNumber = "411111111111111" }, errors.ErrInvalidCardNumber},
		{"17 digits", func(d *domain.PaymentDetails) { d.CardNumber = "41111111111111112" }, errors.ErrInvalidCardNumber},
		{"Spaces in number", func(d *domain.PaymentDetails) { d.CardNumber = "4111 1111 1111 1111" }, errors.ErrInvalidCardNumber},
		{"Letters in number", func(d *domain.PaymentDetails) { d.CardNumber = "411111111111111a" }, errors.ErrInvalidCardNumber},
		{"Month 13", func(d *domain.PaymentDetails) { d.Expiry = "13/27" }, errors.ErrInvalidExpiry},
		{"Month 00", func(d *domain.PaymentDetails) { d.Expiry = "00/27" }, errors.ErrInvalidExpiry},
		{"Four digit year", func(d *domain.PaymentDetails) { d.Expiry = "12/2027" }, errors.ErrInvalidExpiry},
		{"Missing slash", func(d *domain.PaymentDetails) { d.Expiry = "1227" }, errors.ErrInvalidExpiry},
		{"Two digit CVV", func(d *domain.PaymentDetails) { d.CVV = "12" }, errors.ErrInvalidCvv},
		{"Five digit CVV", func(d *domain.PaymentDetails) { d.CVV = "12345" }, errors.ErrInvalidCvv},
		{"Number reported before expiry", func(d *domain.PaymentDetails) {
			d.CardNumber = "1"
			d.Expiry = "99/99"
		}, errors.ErrInvalidCardNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := valid
			tt.mutate(&details)
			err := ValidatePayment(domain.PaymentMethodCard, details)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePayment_Wallet(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{"Valid number", "01712345678", true},
		{"Other operator", "01912345678", true},
		{"Ten digits", "0171234567", false},
		{"Twelve digits", "017123456789", false},
		{"Wrong prefix", "02712345678", false},
		{"Country code", "+8801712345678", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayment(domain.PaymentMethodMobileWallet, domain.PaymentDetails{WalletNumber: tt.number})
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errors.ErrInvalidWalletNumber)
		})
	}
}

func TestValidatePayment_NoMethod(t *testing.T) {
	err := ValidatePayment(domain.PaymentMethodUnset, domain.PaymentDetails{CardNumber: "4111111111111111"})
	require.ErrorIs(t, err, errors.ErrNoMethodSelected)
}

func TestValidatePayment_IgnoresOtherMethodFields(t *testing.T) {
	req := require.New(t)
	details := domain.PaymentDetails{WalletNumber: "01712345678", CardNumber: "bad"}
	req.NoError(ValidatePayment(domain.PaymentMethodMobileWallet, details))
	req.ErrorIs(ValidatePayment(domain.PaymentMethodCard, details), errors.ErrInvalidCardNumber)
}

func TestValidateListing(t *testing.T) {
	image := &domain.FileDescriptor{Name: "calc.png", MediaType: "image/png", Content: []byte{1, 2, 3}}
	valid := domain.ListingDraft{
		Name:        "Desk Lamp",
		Description: "Warm light",
		Price:       "12.50",
		Category:    "Appliances",
		Image:       image,
	}

	tests := []struct {
		name   string
		mutate func(d *domain.ListingDraft)
		ok     bool
	}{
		{"Complete form", func(d *domain.ListingDraft) {}, true},
		{"Missing name", func(d *domain.ListingDraft) { d.Name = " " }, false},
		{"Missing description", func(d *domain.ListingDraft) { d.Description = "" }, false},
		{"Missing category", func(d *domain.ListingDraft) { d.Category = "" }, false},
		{"Missing price", func(d *domain.ListingDraft) { d.Price = "" }, false},
		{"Zero price", func(d *domain.ListingDraft) { d.Price = "0" }, false},
		{"Negative price", func(d *domain.ListingDraft) { d.Price = "-3" }, false},
		{"Not a number", func(d *domain.ListingDraft) { d.Price = "cheap" }, false},
		{"Missing image", func(d *domain.ListingDraft) { d.Image = nil }, false},
		{"Image is a PDF", func(d *domain.ListingDraft) {
			d.Image = &domain.FileDescriptor{Name: "notes.pdf", MediaType: "application/pdf"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			price, err := ValidateListing(draft)
			if tt.ok {
				require.NoError(t, err)
				require.Equal(t, "12.5", price.String())
				return
			}
			require.ErrorIs(t, err, errors.ErrIncompleteForm)
		})
	}
}
