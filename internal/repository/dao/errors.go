package dao

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrBookingNotFound    = errors.New("booking not found")

	// ErrInsufficientAvailability rejects a decrement larger than the
	// remaining quantity, so availability can never go negative.
	ErrInsufficientAvailability = errors.New("insufficient ticket availability")

	// ErrSeatUnavailable rejects taking a seat that is already taken.
	ErrSeatUnavailable = errors.New("seat is no longer available")
)
