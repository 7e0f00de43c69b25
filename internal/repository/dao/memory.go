package dao

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps every collection in process memory. It is the
// default backend: nothing survives a restart, which is why seed data
// is reloaded on startup when the store is empty. A single mutex
// serializes all read-modify-write sequences, so the conditional
// inventory updates are atomic under concurrent checkouts.
type MemoryStore struct {
	mu           sync.Mutex
	events       map[string]Event
	ticketTypes  map[string]TicketType
	seats        map[string]Seat
	bookings     map[string]Booking
	bookingItems map[string]BookingItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events:       make(map[string]Event),
		ticketTypes:  make(map[string]TicketType),
		seats:        make(map[string]Seat),
		bookings:     make(map[string]Booking),
		bookingItems: make(map[string]BookingItem),
	}
}

func (s *MemoryStore) CreateEvent(_ context.Context, event Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = uuid.NewString()
	s.events[event.ID] = event

	return event, nil
}

func (s *MemoryStore) GetEvent(_ context.Context, id string) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return Event{}, ErrEventNotFound
	}

	return event, nil
}

func (s *MemoryStore) ListEvents(_ context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}

	return events, nil
}

func (s *MemoryStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(s.events, id)

	for ttID, tt := range s.ticketTypes {
		if tt.EventID == id {
			delete(s.ticketTypes, ttID)
		}
	}
	for seatID, seat := range s.seats {
		if seat.EventID == id {
			delete(s.seats, seatID)
		}
	}

	return nil
}

func (s *MemoryStore) CreateTicketType(_ context.Context, ticketType TicketType) (TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticketType.ID = uuid.NewString()
	s.ticketTypes[ticketType.ID] = ticketType

	return ticketType, nil
}

func (s *MemoryStore) GetTicketType(_ context.Context, id string) (TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticketType, ok := s.ticketTypes[id]
	if !ok {
		return TicketType{}, ErrTicketTypeNotFound
	}

	return ticketType, nil
}

func (s *MemoryStore) ListTicketTypesByEvent(_ context.Context, eventID string) ([]TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ticketTypes []TicketType
	for _, tt := range s.ticketTypes {
		if tt.EventID == eventID {
			ticketTypes = append(ticketTypes, tt)
		}
	}

	return ticketTypes, nil
}

func (s *MemoryStore) DecrementAvailability(_ context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticketType, ok := s.ticketTypes[id]
	if !ok {
		return ErrTicketTypeNotFound
	}
	if ticketType.AvailableQuantity < quantity {
		return ErrInsufficientAvailability
	}

	ticketType.AvailableQuantity -= quantity
	s.ticketTypes[id] = ticketType

	return nil
}

func (s *MemoryStore) ReleaseAvailability(_ context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticketType, ok := s.ticketTypes[id]
	if !ok {
		return ErrTicketTypeNotFound
	}

	ticketType.AvailableQuantity += quantity
	if ticketType.AvailableQuantity > ticketType.TotalQuantity {
		ticketType.AvailableQuantity = ticketType.TotalQuantity
	}
	s.ticketTypes[id] = ticketType

	return nil
}

func (s *MemoryStore) CreateSeat(_ context.Context, seat Seat) (Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat.ID = uuid.NewString()
	s.seats[seat.ID] = seat

	return seat, nil
}

func (s *MemoryStore) GetSeat(_ context.Context, id string) (Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, ok := s.seats[id]
	if !ok {
		return Seat{}, ErrSeatNotFound
	}

	return seat, nil
}

func (s *MemoryStore) ListSeatsByEvent(_ context.Context, eventID string) ([]Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var seats []Seat
	for _, seat := range s.seats {
		if seat.EventID == eventID {
			seats = append(seats, seat)
		}
	}

	return seats, nil
}

func (s *MemoryStore) MarkSeatUnavailable(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, ok := s.seats[id]
	if !ok {
		return ErrSeatNotFound
	}
	if !seat.IsAvailable {
		return ErrSeatUnavailable
	}

	seat.IsAvailable = false
	s.seats[id] = seat

	return nil
}

func (s *MemoryStore) MarkSeatAvailable(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, ok := s.seats[id]
	if !ok {
		return ErrSeatNotFound
	}

	seat.IsAvailable = true
	s.seats[id] = seat

	return nil
}

func (s *MemoryStore) CreateBooking(_ context.Context, booking Booking) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now()
	s.bookings[booking.ID] = booking

	return booking, nil
}

func (s *MemoryStore) GetBooking(_ context.Context, id string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return Booking{}, ErrBookingNotFound
	}

	return booking, nil
}

func (s *MemoryStore) ListBookings(_ context.Context) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (s *MemoryStore) FindBookingByPaymentIntent(_ context.Context, paymentIntentID string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// O(n) scan, acceptable at in-memory volumes.
	for _, booking := range s.bookings {
		if booking.PaymentIntentID == paymentIntentID {
			return booking, nil
		}
	}

	return Booking{}, ErrBookingNotFound
}

func (s *MemoryStore) UpdateBookingPaymentStatus(_ context.Context, id, status, paymentIntentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	booking.PaymentStatus = status
	if paymentIntentID != "" {
		booking.PaymentIntentID = paymentIntentID
	}
	s.bookings[id] = booking

	return nil
}

// UpdateBookingPaymentStatusIfPending writes the status only while the
// booking is still pending. A false return means another transition
// (confirmation or expiry) won the race and this write was dropped.
func (s *MemoryStore) UpdateBookingPaymentStatusIfPending(_ context.Context, id, status, paymentIntentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok || booking.PaymentStatus != "pending" {
		return false, nil
	}

	booking.PaymentStatus = status
	if paymentIntentID != "" {
		booking.PaymentIntentID = paymentIntentID
	}
	s.bookings[id] = booking

	return true, nil
}

func (s *MemoryStore) ListPendingBookingsBefore(_ context.Context, cutoff time.Time) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []Booking
	for _, booking := range s.bookings {
		if booking.PaymentStatus == "pending" && booking.CreatedAt.Before(cutoff) {
			bookings = append(bookings, booking)
		}
	}

	return bookings, nil
}

func (s *MemoryStore) CreateBookingItem(_ context.Context, item BookingItem) (BookingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	s.bookingItems[item.ID] = item

	return item, nil
}

func (s *MemoryStore) ListBookingItems(_ context.Context, bookingID string) ([]BookingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []BookingItem
	for _, item := range s.bookingItems {
		if item.BookingID == bookingID {
			items = append(items, item)
		}
	}

	return items, nil
}
