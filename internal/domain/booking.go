package domain

import "time"

// Payment statuses a booking moves through. The provider may report
// other strings; no closed set is enforced on the field itself.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusExpired   = "expired"
)

// Booking records one attempted or completed purchase. EventID is
// taken from the first cart line. PaymentStatus is the only field
// mutated after creation.
type Booking struct {
	ID              string    `json:"id"`
	EventID         string    `json:"eventId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	TotalAmount     int       `json:"totalAmount"`
	PaymentStatus   string    `json:"paymentStatus"`
	PaymentIntentID string    `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	QRCode          string    `json:"qrCode"`
}

// BookingItem is one cart line of a booking. Price is the unit price
// snapshotted at purchase time, so later price changes never rewrite
// history. SeatID is set only for seat-based purchases.
type BookingItem struct {
	ID           string `json:"id"`
	BookingID    string `json:"bookingId"`
	TicketTypeID string `json:"ticketTypeId"`
	SeatID       string `json:"seatId,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"`
}

// BookingItemDetails joins a booking item with its ticket type. The
// ticket type is nil when it no longer exists.
type BookingItemDetails struct {
	BookingItem
	TicketType *TicketType `json:"ticketType"`
}

// BookingDetails is a booking enriched with its event and line items,
// as served by the bookings listing.
type BookingDetails struct {
	Booking
	Event Event                `json:"event"`
	Items []BookingItemDetails `json:"items"`
}
