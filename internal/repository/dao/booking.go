package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormBookingDAO struct {
	db *gorm.DB
}

func NewGormBookingDAO(db *gorm.DB) *GormBookingDAO {
	return &GormBookingDAO{
		db: db,
	}
}

func (d *GormBookingDAO) CreateBooking(ctx context.Context, booking Booking) (Booking, error) {
	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now()
	if err := d.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return Booking{}, err
	}

	return booking, nil
}

func (d *GormBookingDAO) GetBooking(ctx context.Context, id string) (Booking, error) {
	var booking Booking
	err := d.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, err
	}

	return booking, nil
}

func (d *GormBookingDAO) ListBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := d.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (d *GormBookingDAO) FindBookingByPaymentIntent(ctx context.Context, paymentIntentID string) (Booking, error) {
	var booking Booking
	err := d.db.WithContext(ctx).First(&booking, "payment_intent_id = ?", paymentIntentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, err
	}

	return booking, nil
}

func (d *GormBookingDAO) UpdateBookingPaymentStatus(ctx context.Context, id, status, paymentIntentID string) error {
	updates := map[string]any{"payment_status": status}
	if paymentIntentID != "" {
		updates["payment_intent_id"] = paymentIntentID
	}

	res := d.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateBookingPaymentStatusIfPending is a conditional update so two
// racing transitions never overwrite each other: zero rows affected
// means the booking left the pending state since it was read.
func (d *GormBookingDAO) UpdateBookingPaymentStatusIfPending(ctx context.Context, id, status, paymentIntentID string) (bool, error) {
	updates := map[string]any{"payment_status": status}
	if paymentIntentID != "" {
		updates["payment_intent_id"] = paymentIntentID
	}

	res := d.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ? AND payment_status = ?", id, "pending").
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// ListPendingBookingsBefore returns pending bookings created before
// the cutoff, i.e. the ones an expiry sweep should reclaim.
func (d *GormBookingDAO) ListPendingBookingsBefore(ctx context.Context, cutoff time.Time) ([]Booking, error) {
	var bookings []Booking
	err := d.db.WithContext(ctx).
		Find(&bookings, "payment_status = ? AND created_at < ?", "pending", cutoff).Error
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (d *GormBookingDAO) CreateBookingItem(ctx context.Context, item BookingItem) (BookingItem, error) {
	item.ID = uuid.NewString()
	if err := d.db.WithContext(ctx).Create(&item).Error; err != nil {
		return BookingItem{}, err
	}

	return item, nil
}

func (d *GormBookingDAO) ListBookingItems(ctx context.Context, bookingID string) ([]BookingItem, error) {
	var items []BookingItem
	if err := d.db.WithContext(ctx).Find(&items, "booking_id = ?", bookingID).Error; err != nil {
		return nil, err
	}

	return items, nil
}
