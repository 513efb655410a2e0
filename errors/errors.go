package errors

import "errors"

// Login
var (
	ErrInvalidDomain        = errors.New("email must belong to the institutional domain")
	ErrMissingField         = errors.New("student id and name are required")
	ErrLoginInProgress      = errors.New("a login attempt is already in progress")
	ErrAlreadyAuthenticated = errors.New("a user is already logged in")
	ErrNotAuthenticated     = errors.New("no authenticated session")
)

// Catalog and chat
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrNoCourseSelected = errors.New("no course selected")
	ErrProductNotFound  = errors.New("product not found")
)

// Checkout
var (
	ErrNoMethodSelected    = errors.New("please select a payment method")
	ErrInvalidCardNumber   = errors.New("invalid card number, must be 16 digits")
	ErrInvalidExpiry       = errors.New("invalid expiry date, use MM/YY format")
	ErrInvalidCvv          = errors.New("invalid CVV, must be 3 or 4 digits")
	ErrInvalidWalletNumber = errors.New("invalid bKash number, must be a valid Bangladeshi mobile number")
	ErrEmptyCart           = errors.New("cart is empty")
)

// Listing
var (
	ErrIncompleteForm = errors.New("please fill all fields and upload an image")
)

// Profile
var (
	ErrNotEditing = errors.New("profile edit not started")
)

// Shell
var (
	ErrWrongArguments = errors.New("wrong arguments")
)
