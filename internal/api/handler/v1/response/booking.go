package response

import "github.com/eventick/eventick-api/internal/domain"

type DebugEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DebugBookings is the development-only raw dump of every booking
// regardless of status, with a thin event index for cross-reference.
type DebugBookings struct {
	Bookings           []domain.Booking `json:"bookings"`
	Events             []DebugEvent     `json:"events"`
	TotalBookings      int              `json:"totalBookings"`
	SuccessfulBookings int              `json:"successfulBookings"`
}
