package domain

import "time"

// Event is immutable once created; the only mutation is deletion,
// which cascades to the event's ticket types and seats.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"imageUrl"`
	OrganizerID string    `json:"organizerId"`
}

// TicketType is a purchasable admission category. Prices are integer
// minor currency units. 0 <= AvailableQuantity <= TotalQuantity holds
// at all times.
type TicketType struct {
	ID                string `json:"id"`
	EventID           string `json:"eventId"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int    `json:"price"`
	TotalQuantity     int    `json:"totalQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// Seat is an individually addressable inventory unit tied to exactly
// one ticket type of the same event.
type Seat struct {
	ID           string `json:"id"`
	EventID      string `json:"eventId"`
	Section      string `json:"section"`
	Row          string `json:"row"`
	Number       string `json:"number"`
	TicketTypeID string `json:"ticketTypeId"`
	IsAvailable  bool   `json:"isAvailable"`
}
