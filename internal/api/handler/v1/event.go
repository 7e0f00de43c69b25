package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventick/eventick-api/internal/api/handler/v1/request"
	"github.com/eventick/eventick-api/internal/api/handler/v1/response"
	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/service"
)

// Defaults applied when an organizer omits optional event fields,
// kept from the storefront's seeded catalog.
const (
	defaultCategory    = "Music"
	defaultImageURL    = "/assets/generated_images/Concert_festival_crowd_image_7174c499.png"
	defaultOrganizerID = "organizer-1"
)

type EventService interface {
	CreateEventWithTickets(ctx context.Context, event domain.Event, ticketTypes []domain.TicketType, seats []service.SeatSpec) (domain.Event, error)
	GetEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetTicketTypesByEvent(ctx context.Context, eventID string) ([]domain.TicketType, error)
	GetSeatsByEvent(ctx context.Context, eventID string) ([]domain.Seat, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetEvents godoc
// @Summary      List events
// @Description  Retrieves every event in the catalog
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.GetEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get one event
// @Description  Retrieves a single event by id
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID := ctx.Param("eventID")

	event, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
			return
		}

		err = fmt.Errorf("HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Creates an event with its ticket types and optional seats in one organizer action
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "event with ticket types"
// @Success      200    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var input request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event := domain.Event{
		Title:       input.Event.Title,
		Description: input.Event.Description,
		Category:    input.Event.Category,
		Date:        parseEventDate(input.Event.Date),
		Venue:       input.Event.Venue,
		Location:    input.Event.Location,
		ImageURL:    input.Event.ImageURL,
		OrganizerID: input.Event.OrganizerID,
	}
	if event.Category == "" {
		event.Category = defaultCategory
	}
	if event.ImageURL == "" {
		event.ImageURL = defaultImageURL
	}
	if event.OrganizerID == "" {
		event.OrganizerID = defaultOrganizerID
	}

	ticketTypes := make([]domain.TicketType, len(input.TicketTypes))
	for i, tt := range input.TicketTypes {
		ticketTypes[i] = domain.TicketType{
			Name:              tt.Name,
			Description:       tt.Description,
			Price:             tt.Price,
			TotalQuantity:     tt.TotalQuantity,
			AvailableQuantity: tt.AvailableQuantity,
		}
	}

	seats := make([]service.SeatSpec, len(input.Seats))
	for i, seat := range input.Seats {
		seats[i] = service.SeatSpec{
			Section:        seat.Section,
			Row:            seat.Row,
			Number:         seat.Number,
			TicketTypeName: seat.TicketType,
		}
	}

	created, err := h.svc.CreateEventWithTickets(ctx.Request.Context(), event, ticketTypes, seats)
	if err != nil {
		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEventWithTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, created)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Deletes an event together with its ticket types and seats; bookings referencing it stay
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "event ID"
// @Success      200      {object}  response.DeleteEvent
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID := ctx.Param("eventID")

	if err := h.svc.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
			return
		}

		err = fmt.Errorf("HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeleteEvent{Success: true})
}

// HandleGetTicketTypes godoc
// @Summary      List ticket types for an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "event ID"
// @Success      200      {array}   domain.TicketType
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/ticket-types [get]
func (h *EventHandler) HandleGetTicketTypes(ctx *gin.Context) {
	eventID := ctx.Param("eventID")

	ticketTypes, err := h.svc.GetTicketTypesByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("HandleGetTicketTypes -> h.svc.GetTicketTypesByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if ticketTypes == nil {
		ticketTypes = []domain.TicketType{}
	}
	ctx.JSON(http.StatusOK, ticketTypes)
}

// HandleGetSeats godoc
// @Summary      List seats for an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "event ID"
// @Success      200      {array}   domain.Seat
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/seats [get]
func (h *EventHandler) HandleGetSeats(ctx *gin.Context) {
	eventID := ctx.Param("eventID")

	seats, err := h.svc.GetSeatsByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("HandleGetSeats -> h.svc.GetSeatsByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if seats == nil {
		seats = []domain.Seat{}
	}
	ctx.JSON(http.StatusOK, seats)
}

// parseEventDate accepts RFC 3339 or a plain date; anything else,
// including an empty field, falls back to the current time.
func parseEventDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed
	}

	return time.Now()
}
