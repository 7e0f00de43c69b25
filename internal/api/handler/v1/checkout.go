package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventick/eventick-api/internal/api/handler/v1/request"
	"github.com/eventick/eventick-api/internal/api/handler/v1/response"
	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/payment"
	"github.com/eventick/eventick-api/internal/service"
)

type CheckoutService interface {
	Checkout(ctx context.Context, input service.CheckoutInput) (service.CheckoutResult, error)
}

type BookingConfirmer interface {
	ConfirmByPaymentIntent(ctx context.Context, paymentIntentID, status string) (domain.Booking, error)
}

type CheckoutHandler struct {
	svc         CheckoutService
	bookings    BookingConfirmer
	mockEnabled bool
}

func NewCheckoutHandler(svc CheckoutService, bookings BookingConfirmer, mockEnabled bool) *CheckoutHandler {
	return &CheckoutHandler{
		svc:         svc,
		bookings:    bookings,
		mockEnabled: mockEnabled,
	}
}

// HandleCreatePaymentIntent godoc
// @Summary      Check out a cart
// @Description  Prices the cart, obtains a payment intent, reserves inventory and creates a pending booking
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePaymentIntentRequest  true  "cart with customer details"
// @Success      200    {object}  response.CreatePaymentIntent
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /create-payment-intent [post]
func (h *CheckoutHandler) HandleCreatePaymentIntent(ctx *gin.Context) {
	var input request.CreatePaymentIntentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	items := make([]service.CartItem, len(input.CartItems))
	for i, item := range input.CartItems {
		items[i] = service.CartItem{
			EventID:      item.EventID,
			TicketTypeID: item.TicketTypeID,
			SeatID:       item.SeatID,
			Quantity:     item.Quantity,
		}
	}

	result, err := h.svc.Checkout(ctx.Request.Context(), service.CheckoutInput{
		Amount:        input.Amount,
		CustomerEmail: input.CustomerEmail,
		CustomerName:  input.CustomerName,
		Items:         items,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrAmountMismatch):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrTicketTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket type", "cart", input.CartItems))
		case errors.Is(err, service.ErrInsufficientAvailability),
			errors.Is(err, service.ErrSeatUnavailable):
			response.RenderErr(ctx, response.NewErr(http.StatusConflict, err.Error()))
		default:
			err = fmt.Errorf("HandleCreatePaymentIntent -> h.svc.Checkout -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.CreatePaymentIntent{
		ClientSecret: result.ClientSecret,
		BookingID:    result.BookingID,
	})
}

// HandleConfirmMockPayment godoc
// @Summary      Confirm a mock payment
// @Description  Transitions the booking tied to a mock payment intent to succeeded
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        input  body      request.ConfirmMockPaymentRequest  true  "mock payment intent"
// @Success      200    {object}  response.ConfirmMockPayment
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /confirm-mock-payment [post]
func (h *CheckoutHandler) HandleConfirmMockPayment(ctx *gin.Context) {
	if !h.mockEnabled {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("mock payments are disabled")))
		return
	}

	var input request.ConfirmMockPaymentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if !strings.HasPrefix(input.PaymentIntentID, payment.MockIntentPrefix) {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid mock payment intent ID")))
		return
	}

	booking, err := h.bookings.ConfirmByPaymentIntent(ctx.Request.Context(), input.PaymentIntentID, domain.PaymentStatusSucceeded)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			response.RenderErr(ctx, response.ErrNotFound("booking", "paymentIntentId", input.PaymentIntentID))
		case errors.Is(err, service.ErrBookingExpired):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleConfirmMockPayment -> h.bookings.ConfirmByPaymentIntent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	details := response.PaymentDetails{
		Type:         "bank",
		BankName:     input.PaymentDetails.BankName,
		AccountLast4: input.PaymentDetails.AccountNumber,
	}
	if input.PaymentMethod == "card" {
		details = response.PaymentDetails{
			Type:           "card",
			Last4:          input.PaymentDetails.Last4,
			CardholderName: input.PaymentDetails.CardholderName,
		}
	}

	ctx.JSON(http.StatusOK, response.ConfirmMockPayment{
		Success:        true,
		Message:        "Mock payment confirmed successfully",
		BookingID:      booking.ID,
		PaymentMethod:  input.PaymentMethod,
		TransactionID:  payment.MockTransactionID(),
		PaymentDetails: details,
	})
}
