// Package seed loads the demo catalog on startup. It only runs when
// the store is empty, so a configured persistent backend is never
// overwritten.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/service"
)

const organizerID = "organizer-1"

type seedEvent struct {
	event       domain.Event
	ticketTypes []domain.TicketType
	seats       []service.SeatSpec
}

func catalog() []seedEvent {
	return []seedEvent{
		{
			event: domain.Event{
				Title:       "Summer Music Festival 2024",
				Description: "Experience the biggest music festival of the year featuring top artists from around the world. Three days of non-stop music, food, and entertainment in a stunning outdoor venue.",
				Category:    "Music",
				Date:        time.Date(2024, time.July, 15, 18, 0, 0, 0, time.UTC),
				Venue:       "Central Park Amphitheater",
				Location:    "New York, NY",
				ImageURL:    "/assets/generated_images/Concert_festival_crowd_image_7174c499.png",
				OrganizerID: organizerID,
			},
			ticketTypes: []domain.TicketType{
				{Name: "General Admission", Description: "Standard entry with access to all stages", Price: 12000, TotalQuantity: 500},
				{Name: "VIP Pass", Description: "Premium access with exclusive lounge and backstage tours", Price: 35000, TotalQuantity: 100},
				{Name: "Early Bird", Description: "Discounted early bird tickets", Price: 9500, TotalQuantity: 200},
			},
		},
		{
			event: domain.Event{
				Title:       "NBA Finals Game 5",
				Description: "Watch the championship series live! Don't miss the action as the top teams compete for the title in this thrilling game.",
				Category:    "Sports",
				Date:        time.Date(2024, time.June, 20, 19, 30, 0, 0, time.UTC),
				Venue:       "Madison Square Garden",
				Location:    "New York, NY",
				ImageURL:    "/assets/generated_images/Sports_stadium_venue_image_ab925d88.png",
				OrganizerID: organizerID,
			},
			ticketTypes: []domain.TicketType{
				{Name: "Upper Bowl", Description: "Seats in the upper level", Price: 15000, TotalQuantity: 300},
				{Name: "Lower Bowl", Description: "Seats in the lower level", Price: 30000, TotalQuantity: 150},
				{Name: "Courtside", Description: "Premium courtside seats", Price: 75000, TotalQuantity: 50},
			},
		},
		{
			event: domain.Event{
				Title:       "Hamilton - Broadway Musical",
				Description: "The story of America's Founding Father Alexander Hamilton, an immigrant from the West Indies who became George Washington's right-hand man during the Revolutionary War.",
				Category:    "Theater",
				Date:        time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC),
				Venue:       "Richard Rodgers Theatre",
				Location:    "New York, NY",
				ImageURL:    "/assets/generated_images/Theater_venue_image_7743119b.png",
				OrganizerID: organizerID,
			},
			ticketTypes: []domain.TicketType{
				{Name: "Orchestra", Description: "Best seats in the house", Price: 25000, TotalQuantity: 100},
				{Name: "Mezzanine", Description: "Elevated view seats", Price: 18000, TotalQuantity: 150},
				{Name: "Balcony", Description: "Upper level seats", Price: 12000, TotalQuantity: 200},
			},
			seats: orchestraSeats(),
		},
		{
			event: domain.Event{
				Title:       "Tech Innovation Summit 2024",
				Description: "Join industry leaders and innovators for a day of inspiring talks, networking, and workshops on the latest in AI, blockchain, and emerging technologies.",
				Category:    "Conference",
				Date:        time.Date(2024, time.August, 10, 9, 0, 0, 0, time.UTC),
				Venue:       "Javits Center",
				Location:    "New York, NY",
				ImageURL:    "/assets/generated_images/Conference_event_image_f757b42c.png",
				OrganizerID: organizerID,
			},
			ticketTypes: []domain.TicketType{
				{Name: "Standard Pass", Description: "Access to all keynotes and expo hall", Price: 29900, TotalQuantity: 400},
				{Name: "Premium Pass", Description: "Includes workshops and networking dinner", Price: 49900, TotalQuantity: 150},
			},
		},
		{
			event: domain.Event{
				Title:       "Comedy Night with Dave Chappelle",
				Description: "An evening of stand-up comedy featuring the legendary Dave Chappelle. Get ready for a night of laughter you won't forget!",
				Category:    "Comedy",
				Date:        time.Date(2024, time.July, 5, 20, 0, 0, 0, time.UTC),
				Venue:       "Comedy Cellar",
				Location:    "New York, NY",
				ImageURL:    "/assets/generated_images/Theater_venue_image_7743119b.png",
				OrganizerID: organizerID,
			},
			ticketTypes: []domain.TicketType{
				{Name: "General Seating", Description: "First come, first served seating", Price: 8500, TotalQuantity: 200},
				{Name: "Reserved Table", Description: "Reserved table for 4 people", Price: 15000, TotalQuantity: 40},
			},
		},
		{
			event: domain.Event{
				Title:       "Modern Art Exhibition Opening",
				Description: "Exclusive opening night of contemporary art featuring works from renowned artists. Includes wine reception and artist meet-and-greet.",
				Category:    "Arts",
				Date:        time.Date(2024, time.June, 25, 18, 0, 0, 0, time.UTC),
				Venue:       "MoMA",
				Location:    "New York, NY",
				ImageURL:    "/assets/generated_images/Theater_venue_image_7743119b.png",
				OrganizerID: organizerID,
			},
			ticketTypes: []domain.TicketType{
				{Name: "General Admission", Description: "Exhibition access and wine reception", Price: 5000, TotalQuantity: 300},
				{Name: "VIP Experience", Description: "Includes artist meet-and-greet and private tour", Price: 15000, TotalQuantity: 50},
			},
		},
	}
}

func orchestraSeats() []service.SeatSpec {
	var seats []service.SeatSpec
	for _, row := range []string{"A", "B", "C"} {
		for number := 1; number <= 8; number++ {
			seats = append(seats, service.SeatSpec{
				Section:        "Orchestra",
				Row:            row,
				Number:         fmt.Sprintf("%d", number),
				TicketTypeName: "Orchestra",
			})
		}
	}

	return seats
}

// Run seeds the catalog when no events exist yet.
func Run(ctx context.Context, svc *service.EventService) error {
	existing, err := svc.GetEvents(ctx)
	if err != nil {
		return fmt.Errorf("svc.GetEvents -> %w", err)
	}
	if len(existing) > 0 {
		zap.L().Info("store already seeded, skipping")
		return nil
	}

	for _, entry := range catalog() {
		if _, err := svc.CreateEventWithTickets(ctx, entry.event, entry.ticketTypes, entry.seats); err != nil {
			return fmt.Errorf("svc.CreateEventWithTickets -> %w", err)
		}
	}
	zap.L().Info("seeded initial events", zap.Int("count", len(catalog())))

	return nil
}
