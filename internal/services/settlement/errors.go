package settlement

import "errors"

// Service errors
var (
	ErrApartmentNotFound    = errors.New("apartment not found")
	ErrApartmentUnavailable = errors.New("apartment not available")
	ErrUserNotFound         = errors.New("user not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidBooking       = errors.New("invalid booking data")
)
