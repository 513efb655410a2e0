package auth

import (
	"campus-hub/domain"
	"campus-hub/domain/mimetypes"
	"campus-hub/errors"
	goerrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	cardNumberPattern   = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern   = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCvvPattern      = regexp.MustCompile(`^\d{3,4}$`)
	walletNumberPattern = regexp.MustCompile(`^01\d{9}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	register := func(tag string, pattern *regexp.Regexp) {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
	}
	register("card_number", cardNumberPattern)
	register("card_expiry", cardExpiryPattern)
	register("card_cvv", cardCvvPattern)
	register("wallet_number", walletNumberPattern)
	return v
}

type LoginRequest struct {
	StudentID string `validate:"required"`
	Email     string `validate:"required"`
	Name      string `validate:"required"`
}

// ValidateLogin checks the institutional email domain first, then that
// student id and name are not blank.
func ValidateLogin(req LoginRequest, emailDomain string) error {
	if !strings.HasSuffix(req.Email, "@"+emailDomain) {
		return fmt.Errorf("%w: email must end with @%s", errors.ErrInvalidDomain, emailDomain)
	}
	trimmed := LoginRequest{
		StudentID: strings.TrimSpace(req.StudentID),
		Email:     strings.TrimSpace(req.Email),
		Name:      strings.TrimSpace(req.Name),
	}
	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingField, err)
	}
	return nil
}

type cardRequest struct {
	Number string `validate:"card_number"`
	Expiry string `validate:"card_expiry"`
	CVV    string `validate:"card_cvv"`
}

type walletRequest struct {
	Number string `validate:"wallet_number"`
}

var cardFieldErrors = map[string]error{
	"Number": errors.ErrInvalidCardNumber,
	"Expiry": errors.ErrInvalidExpiry,
	"CVV":    errors.ErrInvalidCvv,
}

// ValidatePayment checks the details of the selected method only.
// Card fields are reported in form order: number, expiry, CVV.
func ValidatePayment(method domain.PaymentMethod, details domain.PaymentDetails) error {
	switch method {
	case domain.PaymentMethodCard:
		err := validate.Struct(cardRequest{
			Number: details.CardNumber,
			Expiry: details.Expiry,
			CVV:    details.CVV,
		})
		return firstFieldError(err, cardFieldErrors)
	case domain.PaymentMethodMobileWallet:
		err := validate.Struct(walletRequest{Number: details.WalletNumber})
		return firstFieldError(err, map[string]error{"Number": errors.ErrInvalidWalletNumber})
	default:
		return errors.ErrNoMethodSelected
	}
}

type listingRequest struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Price       string `validate:"required"`
	Category    string `validate:"required"`
}

// ValidateListing checks that every sell-item field is filled, the price is
// a positive amount and an image was attached. It returns the parsed price.
func ValidateListing(draft domain.ListingDraft) (decimal.Decimal, error) {
	err := validate.Struct(listingRequest{
		Name:        strings.TrimSpace(draft.Name),
		Description: strings.TrimSpace(draft.Description),
		Price:       strings.TrimSpace(draft.Price),
		Category:    strings.TrimSpace(draft.Category),
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", errors.ErrIncompleteForm, err)
	}
	if draft.Image == nil {
		return decimal.Zero, fmt.Errorf("%w: missing image", errors.ErrIncompleteForm)
	}
	if draft.Image.Kind() != mimetypes.KindImage {
		return decimal.Zero, fmt.Errorf("%w: %s is not an image", errors.ErrIncompleteForm, draft.Image.Name)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(draft.Price))
	if err != nil || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price must be a positive amount", errors.ErrIncompleteForm)
	}
	return price, nil
}

func firstFieldError(err error, byField map[string]error) error {
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if goerrors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		if mapped, ok := byField[fieldErrors[0].StructField()]; ok {
			return mapped
		}
	}
	return err
}
