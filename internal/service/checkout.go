package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/payment"
	"github.com/eventick/eventick-api/internal/qr"
	"github.com/eventick/eventick-api/internal/repository"
)

var (
	ErrInsufficientAvailability = repository.ErrInsufficientAvailability
	ErrSeatUnavailable          = repository.ErrSeatUnavailable

	ErrEmptyCart       = errors.New("cart must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be positive")

	// ErrAmountMismatch rejects a client-asserted amount that differs
	// from the total recomputed from stored prices.
	ErrAmountMismatch = errors.New("amount does not match the price of the cart")
)

// serviceFeeRate is applied on top of the cart subtotal.
const serviceFeeRate = 0.10

type CheckoutEventRepository interface {
	GetTicketType(ctx context.Context, id string) (domain.TicketType, error)
	DecrementAvailability(ctx context.Context, ticketTypeID string, quantity int) error
	ReleaseAvailability(ctx context.Context, ticketTypeID string, quantity int) error
	MarkSeatUnavailable(ctx context.Context, seatID string) error
	MarkSeatAvailable(ctx context.Context, seatID string) error
}

type CheckoutBookingRepository interface {
	CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	CreateBookingItem(ctx context.Context, item domain.BookingItem) (domain.BookingItem, error)
}

type CartItem struct {
	EventID      string
	TicketTypeID string
	SeatID       string
	Quantity     int
}

type CheckoutInput struct {
	Amount        int
	CustomerEmail string
	CustomerName  string
	Items         []CartItem
}

type CheckoutResult struct {
	ClientSecret string
	BookingID    string
}

// CheckoutService turns a cart into a pending booking: it recomputes
// the authoritative total, obtains a payment intent, reserves
// inventory and persists the booking with its line items.
type CheckoutService struct {
	events   CheckoutEventRepository
	bookings CheckoutBookingRepository
	provider payment.Provider
}

func NewCheckoutService(events CheckoutEventRepository, bookings CheckoutBookingRepository, provider payment.Provider) *CheckoutService {
	return &CheckoutService{
		events:   events,
		bookings: bookings,
		provider: provider,
	}
}

// Total returns subtotal plus the service fee for a cart priced from
// the stored ticket types.
func Total(subtotal int) int {
	return subtotal + int(math.Round(float64(subtotal)*serviceFeeRate))
}

func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (CheckoutResult, error) {
	if len(input.Items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	// Price every line from the store, never from the client.
	prices := make(map[string]int, len(input.Items))
	subtotal := 0
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return CheckoutResult{}, ErrInvalidQuantity
		}

		ticketType, err := s.events.GetTicketType(ctx, item.TicketTypeID)
		if err != nil {
			if errors.Is(err, ErrTicketTypeNotFound) {
				return CheckoutResult{}, ErrTicketTypeNotFound
			}

			return CheckoutResult{}, fmt.Errorf("s.events.GetTicketType -> %w", err)
		}

		prices[item.TicketTypeID] = ticketType.Price
		subtotal += ticketType.Price * item.Quantity
	}

	if input.Amount != Total(subtotal) {
		return CheckoutResult{}, ErrAmountMismatch
	}

	intent, err := s.provider.CreateIntent(ctx, input.Amount, input.CustomerEmail, input.CustomerName)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("s.provider.CreateIntent -> %w", err)
	}

	qrCode, err := qr.DataURL("BOOKING-" + intent.ID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("qr.DataURL -> %w", err)
	}

	reserved, err := s.reserve(ctx, input.Items)
	if err != nil {
		return CheckoutResult{}, err
	}

	booking, err := s.bookings.CreateBooking(ctx, domain.Booking{
		EventID:         input.Items[0].EventID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		TotalAmount:     input.Amount,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentIntentID: intent.ID,
		QRCode:          qrCode,
	})
	if err != nil {
		s.rollback(ctx, reserved)
		return CheckoutResult{}, fmt.Errorf("s.bookings.CreateBooking -> %w", err)
	}

	for _, item := range input.Items {
		_, err = s.bookings.CreateBookingItem(ctx, domain.BookingItem{
			BookingID:    booking.ID,
			TicketTypeID: item.TicketTypeID,
			SeatID:       item.SeatID,
			Quantity:     item.Quantity,
			Price:        prices[item.TicketTypeID],
		})
		if err != nil {
			s.rollback(ctx, reserved)
			return CheckoutResult{}, fmt.Errorf("s.bookings.CreateBookingItem -> %w", err)
		}
	}

	return CheckoutResult{
		ClientSecret: intent.ClientSecret,
		BookingID:    booking.ID,
	}, nil
}

// reserve decrements availability for every line and takes seats. On
// any failure the reservations already applied are rolled back, so a
// rejected cart leaves inventory untouched.
func (s *CheckoutService) reserve(ctx context.Context, items []CartItem) ([]CartItem, error) {
	var reserved []CartItem
	for _, item := range items {
		if err := s.events.DecrementAvailability(ctx, item.TicketTypeID, item.Quantity); err != nil {
			s.rollback(ctx, reserved)
			return nil, err
		}

		if item.SeatID != "" {
			if err := s.events.MarkSeatUnavailable(ctx, item.SeatID); err != nil {
				s.rollback(ctx, append(reserved, CartItem{TicketTypeID: item.TicketTypeID, Quantity: item.Quantity}))
				return nil, err
			}
		}

		reserved = append(reserved, item)
	}

	return reserved, nil
}

func (s *CheckoutService) rollback(ctx context.Context, reserved []CartItem) {
	for _, item := range reserved {
		if err := s.events.ReleaseAvailability(ctx, item.TicketTypeID, item.Quantity); err != nil {
			zap.L().Error("failed to release ticket availability during rollback",
				zap.String("ticketTypeId", item.TicketTypeID), zap.Error(err))
		}

		if item.SeatID == "" {
			continue
		}
		if err := s.events.MarkSeatAvailable(ctx, item.SeatID); err != nil {
			zap.L().Error("failed to release seat during rollback",
				zap.String("seatId", item.SeatID), zap.Error(err))
		}
	}
}
