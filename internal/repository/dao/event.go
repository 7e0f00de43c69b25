package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormEventDAO struct {
	db *gorm.DB
}

func NewGormEventDAO(db *gorm.DB) *GormEventDAO {
	return &GormEventDAO{
		db: db,
	}
}

func (d *GormEventDAO) CreateEvent(ctx context.Context, event Event) (Event, error) {
	event.ID = uuid.NewString()
	if err := d.db.WithContext(ctx).Create(&event).Error; err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *GormEventDAO) GetEvent(ctx context.Context, id string) (Event, error) {
	var event Event
	err := d.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, err
	}

	return event, nil
}

func (d *GormEventDAO) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := d.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// DeleteEvent removes the event together with its ticket types and
// seats. Bookings referencing the event are left untouched.
func (d *GormEventDAO) DeleteEvent(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&Event{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEventNotFound
		}

		if err := tx.Delete(&TicketType{}, "event_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&Seat{}, "event_id = ?", id).Error
	})
}

func (d *GormEventDAO) CreateTicketType(ctx context.Context, ticketType TicketType) (TicketType, error) {
	ticketType.ID = uuid.NewString()
	if err := d.db.WithContext(ctx).Create(&ticketType).Error; err != nil {
		return TicketType{}, err
	}

	return ticketType, nil
}

func (d *GormEventDAO) GetTicketType(ctx context.Context, id string) (TicketType, error) {
	var ticketType TicketType
	err := d.db.WithContext(ctx).First(&ticketType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TicketType{}, ErrTicketTypeNotFound
		}

		return TicketType{}, err
	}

	return ticketType, nil
}

func (d *GormEventDAO) ListTicketTypesByEvent(ctx context.Context, eventID string) ([]TicketType, error) {
	var ticketTypes []TicketType
	if err := d.db.WithContext(ctx).Find(&ticketTypes, "event_id = ?", eventID).Error; err != nil {
		return nil, err
	}

	return ticketTypes, nil
}

// DecrementAvailability is a conditional update so that two concurrent
// purchases of the last unit cannot both succeed.
func (d *GormEventDAO) DecrementAvailability(ctx context.Context, id string, quantity int) error {
	res := d.db.WithContext(ctx).
		Model(&TicketType{}).
		Where("id = ? AND available_quantity >= ?", id, quantity).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		if _, err := d.GetTicketType(ctx, id); err != nil {
			return err
		}

		return ErrInsufficientAvailability
	}

	return nil
}

// ReleaseAvailability restores quantity, clamped so availability never
// exceeds the total.
func (d *GormEventDAO) ReleaseAvailability(ctx context.Context, id string, quantity int) error {
	res := d.db.WithContext(ctx).
		Model(&TicketType{}).
		Where("id = ?", id).
		UpdateColumn("available_quantity", gorm.Expr("LEAST(total_quantity, available_quantity + ?)", quantity))
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrTicketTypeNotFound
	}

	return nil
}

func (d *GormEventDAO) CreateSeat(ctx context.Context, seat Seat) (Seat, error) {
	seat.ID = uuid.NewString()
	if err := d.db.WithContext(ctx).Create(&seat).Error; err != nil {
		return Seat{}, err
	}

	return seat, nil
}

func (d *GormEventDAO) GetSeat(ctx context.Context, id string) (Seat, error) {
	var seat Seat
	err := d.db.WithContext(ctx).First(&seat, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Seat{}, ErrSeatNotFound
		}

		return Seat{}, err
	}

	return seat, nil
}

func (d *GormEventDAO) ListSeatsByEvent(ctx context.Context, eventID string) ([]Seat, error) {
	var seats []Seat
	if err := d.db.WithContext(ctx).Find(&seats, "event_id = ?", eventID).Error; err != nil {
		return nil, err
	}

	return seats, nil
}

func (d *GormEventDAO) MarkSeatUnavailable(ctx context.Context, id string) error {
	res := d.db.WithContext(ctx).
		Model(&Seat{}).
		Where("id = ? AND is_available = ?", id, true).
		Update("is_available", false)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		if _, err := d.GetSeat(ctx, id); err != nil {
			return err
		}

		return ErrSeatUnavailable
	}

	return nil
}

func (d *GormEventDAO) MarkSeatAvailable(ctx context.Context, id string) error {
	res := d.db.WithContext(ctx).
		Model(&Seat{}).
		Where("id = ?", id).
		Update("is_available", true)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrSeatNotFound
	}

	return nil
}
