package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/payment"
	"github.com/eventick/eventick-api/internal/repository"
	"github.com/eventick/eventick-api/internal/repository/dao"
	"github.com/eventick/eventick-api/internal/service"
)

type testEnv struct {
	events   *repository.EventRepository
	bookings *repository.BookingRepository
	eventSvc *service.EventService
	checkout *service.CheckoutService
	booking  *service.BookingService
}

func newTestEnv() *testEnv {
	store := dao.NewMemoryStore()
	events := repository.NewEventRepository(store)
	bookings := repository.NewBookingRepository(store)

	return &testEnv{
		events:   events,
		bookings: bookings,
		eventSvc: service.NewEventService(events),
		checkout: service.NewCheckoutService(events, bookings, payment.NewMockProvider("inr")),
		booking:  service.NewBookingService(bookings, events),
	}
}

func createEvent(t *testing.T, env *testEnv, ticketTypes []domain.TicketType, seats []service.SeatSpec) (domain.Event, []domain.TicketType, []domain.Seat) {
	t.Helper()

	event, err := env.eventSvc.CreateEventWithTickets(context.Background(), domain.Event{
		Title:       "Summer Music Festival",
		Description: "Three days of music",
		Category:    "Music",
		Venue:       "Central Park Amphitheater",
		Location:    "New York, NY",
		OrganizerID: "organizer-1",
	}, ticketTypes, seats)
	require.NoError(t, err)

	createdTypes, err := env.eventSvc.GetTicketTypesByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	createdSeats, err := env.eventSvc.GetSeatsByEvent(context.Background(), event.ID)
	require.NoError(t, err)

	return event, createdTypes, createdSeats
}

func TestCheckout_SingleLineItem(t *testing.T) {
	env := newTestEnv()
	event, ticketTypes, _ := createEvent(t, env, []domain.TicketType{
		{Name: "General Admission", Description: "Standard entry", Price: 5000, TotalQuantity: 100},
	}, nil)

	// 2 x 5000 plus the 10% service fee.
	result, err := env.checkout.Checkout(context.Background(), service.CheckoutInput{
		Amount:        11000,
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Items: []service.CartItem{
			{EventID: event.ID, TicketTypeID: ticketTypes[0].ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ClientSecret)
	assert.NotEmpty(t, result.BookingID)

	booking, err := env.bookings.GetBooking(context.Background(), result.BookingID)
	require.NoError(t, err)
	assert.Equal(t, 11000, booking.TotalAmount)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, event.ID, booking.EventID)
	assert.Contains(t, booking.QRCode, "data:image/png;base64,")
	assert.Contains(t, booking.PaymentIntentID, payment.MockIntentPrefix)

	updated, err := env.events.GetTicketType(context.Background(), ticketTypes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 98, updated.AvailableQuantity)

	items, err := env.bookings.ListBookingItems(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5000, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCheckout_AmountMismatchRejected(t *testing.T) {
	env := newTestEnv()
	event, ticketTypes, _ := createEvent(t, env, []domain.TicketType{
		{Name: "General Admission", Description: "Standard entry", Price: 5000, TotalQuantity: 100},
	}, nil)

	// The server prices the cart itself; a client-asserted amount that
	// disagrees is rejected and inventory stays untouched.
	_, err := env.checkout.Checkout(context.Background(), service.CheckoutInput{
		Amount:        10000,
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Items: []service.CartItem{
			{EventID: event.ID, TicketTypeID: ticketTypes[0].ID, Quantity: 2},
		},
	})
	assert.ErrorIs(t, err, service.ErrAmountMismatch)

	unchanged, err := env.events.GetTicketType(context.Background(), ticketTypes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, unchanged.AvailableQuantity)
}

func TestCheckout_OversellRejected(t *testing.T) {
	env := newTestEnv()
	event, ticketTypes, _ := createEvent(t, env, []domain.TicketType{
		{Name: "VIP Pass", Description: "Premium access", Price: 5000, TotalQuantity: 3},
	}, nil)

	_, err := env.checkout.Checkout(context.Background(), service.CheckoutInput{
		Amount:        service.Total(5 * 5000),
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Items: []service.CartItem{
			{EventID: event.ID, TicketTypeID: ticketTypes[0].ID, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, service.ErrInsufficientAvailability)

	unchanged, err := env.events.GetTicketType(context.Background(), ticketTypes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, unchanged.AvailableQuantity)
}

func TestCheckout_SeatDoubleBookingRejected(t *testing.T) {
	env := newTestEnv()
	event, ticketTypes, seats := createEvent(t, env, []domain.TicketType{
		{Name: "Orchestra", Description: "Best seats", Price: 25000, TotalQuantity: 10},
	}, []service.SeatSpec{
		{Section: "Orchestra", Row: "A", Number: "1", TicketTypeName: "Orchestra"},
	})
	require.Len(t, seats, 1)

	input := service.CheckoutInput{
		Amount:        service.Total(25000),
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Items: []service.CartItem{
			{EventID: event.ID, TicketTypeID: ticketTypes[0].ID, SeatID: seats[0].ID, Quantity: 1},
		},
	}

	_, err := env.checkout.Checkout(context.Background(), input)
	require.NoError(t, err)

	input.CustomerEmail = "john@example.com"
	input.CustomerName = "John Doe"
	_, err = env.checkout.Checkout(context.Background(), input)
	assert.ErrorIs(t, err, service.ErrSeatUnavailable)

	// The second attempt's ticket decrement must have been rolled back.
	ticketType, err := env.events.GetTicketType(context.Background(), ticketTypes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 9, ticketType.AvailableQuantity)
}

func TestCheckout_PartialReservationRolledBack(t *testing.T) {
	env := newTestEnv()
	event, ticketTypes, _ := createEvent(t, env, []domain.TicketType{
		{Name: "General Admission", Description: "Standard entry", Price: 5000, TotalQuantity: 10},
		{Name: "VIP Pass", Description: "Premium access", Price: 9000, TotalQuantity: 2},
	}, nil)

	_, err := env.checkout.Checkout(context.Background(), service.CheckoutInput{
		Amount:        service.Total(1*5000 + 5*9000),
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Items: []service.CartItem{
			{EventID: event.ID, TicketTypeID: ticketTypes[0].ID, Quantity: 1},
			{EventID: event.ID, TicketTypeID: ticketTypes[1].ID, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, service.ErrInsufficientAvailability)

	first, err := env.events.GetTicketType(context.Background(), ticketTypes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 10, first.AvailableQuantity)

	second, err := env.events.GetTicketType(context.Background(), ticketTypes[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.AvailableQuantity)
}

func TestCheckout_ConcurrentLastUnit(t *testing.T) {
	env := newTestEnv()
	event, ticketTypes, _ := createEvent(t, env, []domain.TicketType{
		{Name: "Courtside", Description: "Premium courtside seats", Price: 75000, TotalQuantity: 1},
	}, nil)

	input := service.CheckoutInput{
		Amount:        service.Total(75000),
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Items: []service.CartItem{
			{EventID: event.ID, TicketTypeID: ticketTypes[0].ID, Quantity: 1},
		},
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.checkout.Checkout(context.Background(), input)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, service.ErrInsufficientAvailability)
		}
	}
	assert.Equal(t, 1, succeeded)

	ticketType, err := env.events.GetTicketType(context.Background(), ticketTypes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, ticketType.AvailableQuantity)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	env := newTestEnv()

	_, err := env.checkout.Checkout(context.Background(), service.CheckoutInput{
		Amount:        1000,
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
	})
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestCheckout_UnknownTicketType(t *testing.T) {
	env := newTestEnv()

	_, err := env.checkout.Checkout(context.Background(), service.CheckoutInput{
		Amount:        1000,
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		Items: []service.CartItem{
			{EventID: "nope", TicketTypeID: "nope", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, service.ErrTicketTypeNotFound)
}
