package service

import (
	"context"
	"fmt"

	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/repository"
)

var (
	ErrEventNotFound      = repository.ErrEventNotFound
	ErrTicketTypeNotFound = repository.ErrTicketTypeNotFound
	ErrSeatNotFound       = repository.ErrSeatNotFound
)

type EventRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	CreateTicketType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error)
	ListTicketTypesByEvent(ctx context.Context, eventID string) ([]domain.TicketType, error)
	CreateSeat(ctx context.Context, seat domain.Seat) (domain.Seat, error)
	ListSeatsByEvent(ctx context.Context, eventID string) ([]domain.Seat, error)
}

// SeatSpec describes a seat to create alongside an event. Seats
// reference ticket types by name because generated ids do not exist
// until the event is created; resolution guarantees every seat points
// at a ticket type of its own event.
type SeatSpec struct {
	Section        string
	Row            string
	Number         string
	TicketTypeName string
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// CreateEventWithTickets creates the event, its ticket types and any
// seats in one organizer action. Ticket types with no available
// quantity given start fully available.
func (s *EventService) CreateEventWithTickets(ctx context.Context, event domain.Event, ticketTypes []domain.TicketType, seats []SeatSpec) (domain.Event, error) {
	createdEvent, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.CreateEvent -> %w", err)
	}

	ticketTypeIDs := make(map[string]string, len(ticketTypes))
	for _, tt := range ticketTypes {
		tt.EventID = createdEvent.ID
		if tt.AvailableQuantity == 0 {
			tt.AvailableQuantity = tt.TotalQuantity
		}

		created, err := s.repo.CreateTicketType(ctx, tt)
		if err != nil {
			return domain.Event{}, fmt.Errorf("s.repo.CreateTicketType -> %w", err)
		}
		ticketTypeIDs[created.Name] = created.ID
	}

	for _, spec := range seats {
		ticketTypeID, ok := ticketTypeIDs[spec.TicketTypeName]
		if !ok {
			return domain.Event{}, fmt.Errorf("seat %v%v references unknown ticket type %q", spec.Row, spec.Number, spec.TicketTypeName)
		}

		seat := domain.Seat{
			EventID:      createdEvent.ID,
			Section:      spec.Section,
			Row:          spec.Row,
			Number:       spec.Number,
			TicketTypeID: ticketTypeID,
			IsAvailable:  true,
		}
		if _, err := s.repo.CreateSeat(ctx, seat); err != nil {
			return domain.Event{}, fmt.Errorf("s.repo.CreateSeat -> %w", err)
		}
	}

	return createdEvent, nil
}

func (s *EventService) GetEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEvents -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	return event, nil
}

// DeleteEvent cascades to the event's ticket types and seats. Bookings
// referencing the event are deliberately kept.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.repo.DeleteEvent(ctx, id)
}

func (s *EventService) GetTicketTypesByEvent(ctx context.Context, eventID string) ([]domain.TicketType, error) {
	ticketTypes, err := s.repo.ListTicketTypesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTicketTypesByEvent -> %w", err)
	}

	return ticketTypes, nil
}

func (s *EventService) GetSeatsByEvent(ctx context.Context, eventID string) ([]domain.Seat, error) {
	seats, err := s.repo.ListSeatsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListSeatsByEvent -> %w", err)
	}

	return seats, nil
}
