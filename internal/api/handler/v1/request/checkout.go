package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CartItemPayload struct {
	EventID      string `json:"eventId"`
	TicketTypeID string `json:"ticketTypeId"`
	SeatID       string `json:"seatId"`
	Quantity     int    `json:"quantity"`
	// Price is what the client believes the unit costs. It is echoed
	// by storefront clients but the server prices the cart from the
	// stored ticket types.
	Price int `json:"price"`
}

type CreatePaymentIntentRequest struct {
	Amount        int               `json:"amount"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerName  string            `json:"customerName"`
	CartItems     []CartItemPayload `json:"cartItems"`
}

func (req *CreatePaymentIntentRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required, validation.Min(1)),
		validation.Field(&req.CustomerEmail, validation.Required, is.Email),
		validation.Field(&req.CustomerName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.CartItems, validation.Required),
	); err != nil {
		return err
	}

	for i := range req.CartItems {
		item := &req.CartItems[i]
		err := validation.ValidateStruct(
			item,
			validation.Field(&item.EventID, validation.Required),
			validation.Field(&item.TicketTypeID, validation.Required),
			validation.Field(&item.Quantity, validation.Required, validation.Min(1)),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

type PaymentDetailsPayload struct {
	Last4          string `json:"last4"`
	CardholderName string `json:"cardholderName"`
	BankName       string `json:"bankName"`
	AccountNumber  string `json:"accountNumber"`
}

type ConfirmMockPaymentRequest struct {
	PaymentIntentID string                `json:"paymentIntentId"`
	PaymentMethod   string                `json:"paymentMethod"`
	PaymentDetails  PaymentDetailsPayload `json:"paymentDetails"`
}

func (req *ConfirmMockPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentIntentID, validation.Required),
	)
}
