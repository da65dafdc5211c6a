package entity

import "errors"

var (
	// Excursion errors
	ErrExcursionNotFound = errors.New("excursion not found")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingAlreadyExists = errors.New("active booking for this excursion already exists")
	ErrNotEnoughSeats       = errors.New("not enough available seats")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// General errors
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden operation")
)
