package repository

import (
	"context"
	"time"

	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/repository/dao"
)

var ErrBookingNotFound = dao.ErrBookingNotFound

type BookingDAO interface {
	CreateBooking(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	GetBooking(ctx context.Context, id string) (dao.Booking, error)
	ListBookings(ctx context.Context) ([]dao.Booking, error)
	FindBookingByPaymentIntent(ctx context.Context, paymentIntentID string) (dao.Booking, error)
	UpdateBookingPaymentStatus(ctx context.Context, id, status, paymentIntentID string) error
	UpdateBookingPaymentStatusIfPending(ctx context.Context, id, status, paymentIntentID string) (bool, error)
	ListPendingBookingsBefore(ctx context.Context, cutoff time.Time) ([]dao.Booking, error)
	CreateBookingItem(ctx context.Context, item dao.BookingItem) (dao.BookingItem, error)
	ListBookingItems(ctx context.Context, bookingID string) ([]dao.BookingItem, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) bookingDomainToDao(b domain.Booking) dao.Booking {
	return dao.Booking{
		ID:              b.ID,
		EventID:         b.EventID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		TotalAmount:     b.TotalAmount,
		PaymentStatus:   b.PaymentStatus,
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		QRCode:          b.QRCode,
	}
}

func (r *BookingRepository) bookingDaoToDomain(b dao.Booking) domain.Booking {
	return domain.Booking{
		ID:              b.ID,
		EventID:         b.EventID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		TotalAmount:     b.TotalAmount,
		PaymentStatus:   b.PaymentStatus,
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		QRCode:          b.QRCode,
	}
}

func (r *BookingRepository) itemDomainToDao(item domain.BookingItem) dao.BookingItem {
	return dao.BookingItem{
		ID:           item.ID,
		BookingID:    item.BookingID,
		TicketTypeID: item.TicketTypeID,
		SeatID:       item.SeatID,
		Quantity:     item.Quantity,
		Price:        item.Price,
	}
}

func (r *BookingRepository) itemDaoToDomain(item dao.BookingItem) domain.BookingItem {
	return domain.BookingItem{
		ID:           item.ID,
		BookingID:    item.BookingID,
		TicketTypeID: item.TicketTypeID,
		SeatID:       item.SeatID,
		Quantity:     item.Quantity,
		Price:        item.Price,
	}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := r.dao.CreateBooking(ctx, r.bookingDomainToDao(booking))
	if err != nil {
		return domain.Booking{}, err
	}

	return r.bookingDaoToDomain(created), nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	booking, err := r.dao.GetBooking(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}

	return r.bookingDaoToDomain(booking), nil
}

func (r *BookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	daoBookings, err := r.dao.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, len(daoBookings))
	for i, b := range daoBookings {
		bookings[i] = r.bookingDaoToDomain(b)
	}

	return bookings, nil
}

func (r *BookingRepository) FindBookingByPaymentIntent(ctx context.Context, paymentIntentID string) (domain.Booking, error) {
	booking, err := r.dao.FindBookingByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return domain.Booking{}, err
	}

	return r.bookingDaoToDomain(booking), nil
}

func (r *BookingRepository) UpdateBookingPaymentStatus(ctx context.Context, id, status, paymentIntentID string) error {
	return r.dao.UpdateBookingPaymentStatus(ctx, id, status, paymentIntentID)
}

func (r *BookingRepository) UpdateBookingPaymentStatusIfPending(ctx context.Context, id, status, paymentIntentID string) (bool, error) {
	return r.dao.UpdateBookingPaymentStatusIfPending(ctx, id, status, paymentIntentID)
}

func (r *BookingRepository) ListPendingBookingsBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	daoBookings, err := r.dao.ListPendingBookingsBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, len(daoBookings))
	for i, b := range daoBookings {
		bookings[i] = r.bookingDaoToDomain(b)
	}

	return bookings, nil
}

func (r *BookingRepository) CreateBookingItem(ctx context.Context, item domain.BookingItem) (domain.BookingItem, error) {
	created, err := r.dao.CreateBookingItem(ctx, r.itemDomainToDao(item))
	if err != nil {
		return domain.BookingItem{}, err
	}

	return r.itemDaoToDomain(created), nil
}

func (r *BookingRepository) ListBookingItems(ctx context.Context, bookingID string) ([]domain.BookingItem, error) {
	daoItems, err := r.dao.ListBookingItems(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.BookingItem, len(daoItems))
	for i, item := range daoItems {
		items[i] = r.itemDaoToDomain(item)
	}

	return items, nil
}
