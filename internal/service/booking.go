package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/repository"
)

var (
	ErrBookingNotFound = repository.ErrBookingNotFound

	// ErrBookingExpired rejects confirming a booking whose held
	// inventory was already released by the expiry sweep.
	ErrBookingExpired = errors.New("booking reservation has expired")
)

type BookingRepository interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	FindBookingByPaymentIntent(ctx context.Context, paymentIntentID string) (domain.Booking, error)
	UpdateBookingPaymentStatusIfPending(ctx context.Context, id, status, paymentIntentID string) (bool, error)
	ListPendingBookingsBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	ListBookingItems(ctx context.Context, bookingID string) ([]domain.BookingItem, error)
}

type BookingEventRepository interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetTicketType(ctx context.Context, id string) (domain.TicketType, error)
	ReleaseAvailability(ctx context.Context, ticketTypeID string, quantity int) error
	MarkSeatAvailable(ctx context.Context, seatID string) error
}

// BookingService manages the booking payment lifecycle: pending at
// creation, succeeded on confirmation, expired when the reservation
// is reclaimed.
type BookingService struct {
	repo   BookingRepository
	events BookingEventRepository
}

func NewBookingService(repo BookingRepository, events BookingEventRepository) *BookingService {
	return &BookingService{
		repo:   repo,
		events: events,
	}
}

// ConfirmByPaymentIntent transitions the matching booking to status.
// Confirming an already succeeded booking is a no-op, so retries and
// duplicate provider callbacks are harmless.
func (s *BookingService) ConfirmByPaymentIntent(ctx context.Context, paymentIntentID, status string) (domain.Booking, error) {
	booking, err := s.repo.FindBookingByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domain.Booking{}, ErrBookingNotFound
		}

		return domain.Booking{}, fmt.Errorf("s.repo.FindBookingByPaymentIntent -> %w", err)
	}

	if booking.PaymentStatus == domain.PaymentStatusSucceeded {
		return booking, nil
	}
	if booking.PaymentStatus == domain.PaymentStatusExpired {
		return domain.Booking{}, ErrBookingExpired
	}

	updated, err := s.repo.UpdateBookingPaymentStatusIfPending(ctx, booking.ID, status, paymentIntentID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.UpdateBookingPaymentStatusIfPending -> %w", err)
	}
	if !updated {
		// Lost the write to a concurrent transition. Re-read to tell a
		// duplicate confirmation from the expiry sweep claiming the
		// booking (whose inventory is then already released).
		booking, err = s.repo.FindBookingByPaymentIntent(ctx, paymentIntentID)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("s.repo.FindBookingByPaymentIntent -> %w", err)
		}
		if booking.PaymentStatus == domain.PaymentStatusSucceeded {
			return booking, nil
		}

		return domain.Booking{}, ErrBookingExpired
	}
	booking.PaymentStatus = status

	return booking, nil
}

// ListSucceededWithDetails returns succeeded bookings joined with
// their event and line items. Bookings whose event has since been
// deleted are skipped rather than failing the whole listing.
func (s *BookingService) ListSucceededWithDetails(ctx context.Context) ([]domain.BookingDetails, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListBookings -> %w", err)
	}

	details := make([]domain.BookingDetails, 0, len(bookings))
	for _, booking := range bookings {
		if booking.PaymentStatus != domain.PaymentStatusSucceeded {
			continue
		}

		event, err := s.events.GetEvent(ctx, booking.EventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				zap.L().Warn("skipping booking whose event no longer exists",
					zap.String("bookingId", booking.ID), zap.String("eventId", booking.EventID))
				continue
			}

			return nil, fmt.Errorf("s.events.GetEvent -> %w", err)
		}

		items, err := s.repo.ListBookingItems(ctx, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.ListBookingItems -> %w", err)
		}

		itemDetails := make([]domain.BookingItemDetails, len(items))
		for i, item := range items {
			itemDetails[i] = domain.BookingItemDetails{BookingItem: item}

			ticketType, err := s.events.GetTicketType(ctx, item.TicketTypeID)
			if err == nil {
				itemDetails[i].TicketType = &ticketType
			} else if !errors.Is(err, repository.ErrTicketTypeNotFound) {
				return nil, fmt.Errorf("s.events.GetTicketType -> %w", err)
			}
		}

		details = append(details, domain.BookingDetails{
			Booking: booking,
			Event:   event,
			Items:   itemDetails,
		})
	}

	return details, nil
}

// Snapshot returns every booking regardless of status plus the full
// event list. Serves the development-only debug listing.
func (s *BookingService) Snapshot(ctx context.Context) ([]domain.Booking, []domain.Event, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.ListBookings -> %w", err)
	}

	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.events.ListEvents -> %w", err)
	}

	return bookings, events, nil
}

// ReleaseExpired reclaims pending bookings older than ttl: their held
// ticket quantities are released, their seats freed, and the bookings
// marked expired. Returns how many bookings were reclaimed.
func (s *BookingService) ReleaseExpired(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	stale, err := s.repo.ListPendingBookingsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("s.repo.ListPendingBookingsBefore -> %w", err)
	}

	released := 0
	for _, booking := range stale {
		// Claim the booking before touching inventory. A confirmation
		// landing after the listing wins the race and keeps its tickets.
		expired, err := s.repo.UpdateBookingPaymentStatusIfPending(ctx, booking.ID, domain.PaymentStatusExpired, "")
		if err != nil {
			return released, fmt.Errorf("s.repo.UpdateBookingPaymentStatusIfPending -> %w", err)
		}
		if !expired {
			continue
		}

		items, err := s.repo.ListBookingItems(ctx, booking.ID)
		if err != nil {
			return released, fmt.Errorf("s.repo.ListBookingItems -> %w", err)
		}

		for _, item := range items {
			if err := s.events.ReleaseAvailability(ctx, item.TicketTypeID, item.Quantity); err != nil {
				zap.L().Error("failed to release expired ticket availability",
					zap.String("bookingId", booking.ID), zap.String("ticketTypeId", item.TicketTypeID), zap.Error(err))
			}

			if item.SeatID == "" {
				continue
			}
			if err := s.events.MarkSeatAvailable(ctx, item.SeatID); err != nil {
				zap.L().Error("failed to release expired seat",
					zap.String("bookingId", booking.ID), zap.String("seatId", item.SeatID), zap.Error(err))
			}
		}

		released++
		zap.L().Info("released expired booking",
			zap.String("bookingId", booking.ID), zap.Time("createdAt", booking.CreatedAt))
	}

	return released, nil
}
