package repository

import (
	"context"

	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/repository/dao"
)

var (
	ErrEventNotFound            = dao.ErrEventNotFound
	ErrTicketTypeNotFound       = dao.ErrTicketTypeNotFound
	ErrSeatNotFound             = dao.ErrSeatNotFound
	ErrInsufficientAvailability = dao.ErrInsufficientAvailability
	ErrSeatUnavailable          = dao.ErrSeatUnavailable
)

type EventDAO interface {
	CreateEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	GetEvent(ctx context.Context, id string) (dao.Event, error)
	ListEvents(ctx context.Context) ([]dao.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	CreateTicketType(ctx context.Context, ticketType dao.TicketType) (dao.TicketType, error)
	GetTicketType(ctx context.Context, id string) (dao.TicketType, error)
	ListTicketTypesByEvent(ctx context.Context, eventID string) ([]dao.TicketType, error)
	DecrementAvailability(ctx context.Context, id string, quantity int) error
	ReleaseAvailability(ctx context.Context, id string, quantity int) error
	CreateSeat(ctx context.Context, seat dao.Seat) (dao.Seat, error)
	GetSeat(ctx context.Context, id string) (dao.Seat, error)
	ListSeatsByEvent(ctx context.Context, eventID string) ([]dao.Seat, error)
	MarkSeatUnavailable(ctx context.Context, id string) error
	MarkSeatAvailable(ctx context.Context, id string) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) eventDomainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Venue:       e.Venue,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		OrganizerID: e.OrganizerID,
	}
}

func (r *EventRepository) eventDaoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Venue:       e.Venue,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		OrganizerID: e.OrganizerID,
	}
}

func (r *EventRepository) ticketTypeDomainToDao(tt domain.TicketType) dao.TicketType {
	return dao.TicketType{
		ID:                tt.ID,
		EventID:           tt.EventID,
		Name:              tt.Name,
		Description:       tt.Description,
		Price:             tt.Price,
		TotalQuantity:     tt.TotalQuantity,
		AvailableQuantity: tt.AvailableQuantity,
	}
}

func (r *EventRepository) ticketTypeDaoToDomain(tt dao.TicketType) domain.TicketType {
	return domain.TicketType{
		ID:                tt.ID,
		EventID:           tt.EventID,
		Name:              tt.Name,
		Description:       tt.Description,
		Price:             tt.Price,
		TotalQuantity:     tt.TotalQuantity,
		AvailableQuantity: tt.AvailableQuantity,
	}
}

func (r *EventRepository) seatDomainToDao(s domain.Seat) dao.Seat {
	return dao.Seat{
		ID:           s.ID,
		EventID:      s.EventID,
		Section:      s.Section,
		Row:          s.Row,
		Number:       s.Number,
		TicketTypeID: s.TicketTypeID,
		IsAvailable:  s.IsAvailable,
	}
}

func (r *EventRepository) seatDaoToDomain(s dao.Seat) domain.Seat {
	return domain.Seat{
		ID:           s.ID,
		EventID:      s.EventID,
		Section:      s.Section,
		Row:          s.Row,
		Number:       s.Number,
		TicketTypeID: s.TicketTypeID,
		IsAvailable:  s.IsAvailable,
	}
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.CreateEvent(ctx, r.eventDomainToDao(event))
	if err != nil {
		return domain.Event{}, err
	}

	return r.eventDaoToDomain(created), nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := r.dao.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	return r.eventDaoToDomain(event), nil
}

func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	daoEvents, err := r.dao.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, len(daoEvents))
	for i, e := range daoEvents {
		events[i] = r.eventDaoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	return r.dao.DeleteEvent(ctx, id)
}

func (r *EventRepository) CreateTicketType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error) {
	created, err := r.dao.CreateTicketType(ctx, r.ticketTypeDomainToDao(ticketType))
	if err != nil {
		return domain.TicketType{}, err
	}

	return r.ticketTypeDaoToDomain(created), nil
}

func (r *EventRepository) GetTicketType(ctx context.Context, id string) (domain.TicketType, error) {
	ticketType, err := r.dao.GetTicketType(ctx, id)
	if err != nil {
		return domain.TicketType{}, err
	}

	return r.ticketTypeDaoToDomain(ticketType), nil
}

func (r *EventRepository) ListTicketTypesByEvent(ctx context.Context, eventID string) ([]domain.TicketType, error) {
	daoTicketTypes, err := r.dao.ListTicketTypesByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	ticketTypes := make([]domain.TicketType, len(daoTicketTypes))
	for i, tt := range daoTicketTypes {
		ticketTypes[i] = r.ticketTypeDaoToDomain(tt)
	}

	return ticketTypes, nil
}

func (r *EventRepository) DecrementAvailability(ctx context.Context, ticketTypeID string, quantity int) error {
	return r.dao.DecrementAvailability(ctx, ticketTypeID, quantity)
}

func (r *EventRepository) ReleaseAvailability(ctx context.Context, ticketTypeID string, quantity int) error {
	return r.dao.ReleaseAvailability(ctx, ticketTypeID, quantity)
}

func (r *EventRepository) CreateSeat(ctx context.Context, seat domain.Seat) (domain.Seat, error) {
	created, err := r.dao.CreateSeat(ctx, r.seatDomainToDao(seat))
	if err != nil {
		return domain.Seat{}, err
	}

	return r.seatDaoToDomain(created), nil
}

func (r *EventRepository) GetSeat(ctx context.Context, id string) (domain.Seat, error) {
	seat, err := r.dao.GetSeat(ctx, id)
	if err != nil {
		return domain.Seat{}, err
	}

	return r.seatDaoToDomain(seat), nil
}

func (r *EventRepository) ListSeatsByEvent(ctx context.Context, eventID string) ([]domain.Seat, error) {
	daoSeats, err := r.dao.ListSeatsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	seats := make([]domain.Seat, len(daoSeats))
	for i, s := range daoSeats {
		seats[i] = r.seatDaoToDomain(s)
	}

	return seats, nil
}

func (r *EventRepository) MarkSeatUnavailable(ctx context.Context, seatID string) error {
	return r.dao.MarkSeatUnavailable(ctx, seatID)
}

func (r *EventRepository) MarkSeatAvailable(ctx context.Context, seatID string) error {
	return r.dao.MarkSeatAvailable(ctx, seatID)
}
