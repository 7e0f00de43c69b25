package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	OrganizerID string `json:"organizerId"`
}

type TicketTypePayload struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int    `json:"price"`
	TotalQuantity     int    `json:"totalQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// SeatPayload references its ticket type by name since the generated
// ids are not known before the event exists.
type SeatPayload struct {
	Section    string `json:"section"`
	Row        string `json:"row"`
	Number     string `json:"number"`
	TicketType string `json:"ticketType"`
}

type CreateEventRequest struct {
	Event       EventPayload        `json:"event"`
	TicketTypes []TicketTypePayload `json:"ticketTypes"`
	Seats       []SeatPayload       `json:"seats"`
}

func (req *CreateEventRequest) Validate() error {
	if err := validation.ValidateStruct(
		&req.Event,
		validation.Field(&req.Event.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Event.Description, validation.Required),
		validation.Field(&req.Event.Venue, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Event.Location, validation.Required, validation.Length(1, 200)),
	); err != nil {
		return err
	}

	if err := validation.Validate(req.TicketTypes, validation.Required); err != nil {
		return err
	}

	for i := range req.TicketTypes {
		tt := &req.TicketTypes[i]
		err := validation.ValidateStruct(
			tt,
			validation.Field(&tt.Name, validation.Required, validation.Length(1, 100)),
			validation.Field(&tt.Description, validation.Required),
			validation.Field(&tt.Price, validation.Required, validation.Min(1)),
			validation.Field(&tt.TotalQuantity, validation.Required, validation.Min(1)),
			validation.Field(&tt.AvailableQuantity, validation.Min(0)),
		)
		if err != nil {
			return err
		}
	}

	for i := range req.Seats {
		seat := &req.Seats[i]
		err := validation.ValidateStruct(
			seat,
			validation.Field(&seat.Section, validation.Required),
			validation.Field(&seat.Row, validation.Required),
			validation.Field(&seat.Number, validation.Required),
			validation.Field(&seat.TicketType, validation.Required),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
