package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventick/eventick-api/internal/api/handler/v1/response"
	"github.com/eventick/eventick-api/internal/domain"
)

type BookingService interface {
	ListSucceededWithDetails(ctx context.Context) ([]domain.BookingDetails, error)
	Snapshot(ctx context.Context) ([]domain.Booking, []domain.Event, error)
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

// HandleGetBookings godoc
// @Summary      List issued tickets
// @Description  Returns succeeded bookings joined with event and ticket type detail
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.BookingDetails
// @Failure      500  {object}  response.Err
// @Router       /bookings [get]
func (h *BookingHandler) HandleGetBookings(ctx *gin.Context) {
	bookings, err := h.svc.ListSucceededWithDetails(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetBookings -> h.svc.ListSucceededWithDetails -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleDebugBookings godoc
// @Summary      Dump all bookings
// @Description  Returns every booking regardless of status with a thin event index; mounted only in development
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  response.DebugBookings
// @Failure      500  {object}  response.Err
// @Router       /debug/bookings [get]
func (h *BookingHandler) HandleDebugBookings(ctx *gin.Context) {
	bookings, events, err := h.svc.Snapshot(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleDebugBookings -> h.svc.Snapshot -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}
	eventIndex := make([]response.DebugEvent, len(events))
	for i, event := range events {
		eventIndex[i] = response.DebugEvent{ID: event.ID, Title: event.Title}
	}

	succeeded := 0
	for _, booking := range bookings {
		if booking.PaymentStatus == domain.PaymentStatusSucceeded {
			succeeded++
		}
	}

	ctx.JSON(http.StatusOK, response.DebugBookings{
		Bookings:           bookings,
		Events:             eventIndex,
		TotalBookings:      len(bookings),
		SuccessfulBookings: succeeded,
	})
}
