package dao

import "time"

type Event struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Date        time.Time
	Venue       string `gorm:"not null"`
	Location    string `gorm:"not null"`
	ImageURL    string
	OrganizerID string `gorm:"index"`
}

type TicketType struct {
	ID                string `gorm:"primaryKey"`
	EventID           string `gorm:"index;not null"`
	Name              string `gorm:"not null"`
	Description       string
	Price             int `gorm:"not null"`
	TotalQuantity     int `gorm:"not null"`
	AvailableQuantity int `gorm:"not null"`
}

type Seat struct {
	ID           string `gorm:"primaryKey"`
	EventID      string `gorm:"index;not null"`
	Section      string `gorm:"not null"`
	Row          string `gorm:"not null"`
	Number       string `gorm:"not null"`
	TicketTypeID string `gorm:"index;not null"`
	IsAvailable  bool
}

type Booking struct {
	ID              string `gorm:"primaryKey"`
	EventID         string `gorm:"index;not null"`
	CustomerName    string `gorm:"not null"`
	CustomerEmail   string `gorm:"not null"`
	TotalAmount     int    `gorm:"not null"`
	PaymentStatus   string `gorm:"index;not null"`
	PaymentIntentID string `gorm:"index"`
	CreatedAt       time.Time
	QRCode          string
}

type BookingItem struct {
	ID           string `gorm:"primaryKey"`
	BookingID    string `gorm:"index;not null"`
	TicketTypeID string `gorm:"not null"`
	SeatID       string
	Quantity     int `gorm:"not null"`
	Price        int `gorm:"not null"`
}
