package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// StripeProvider creates real PaymentIntents through the Stripe API.
type StripeProvider struct {
	currency string
}

func NewStripeProvider(secretKey, currency string) *StripeProvider {
	stripe.Key = secretKey

	return &StripeProvider{
		currency: currency,
	}
}

func (p *StripeProvider) CreateIntent(_ context.Context, amount int, customerEmail, customerName string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(int64(amount)),
		Currency:     stripe.String(p.currency),
		ReceiptEmail: stripe.String(customerEmail),
	}
	params.AddMetadata("customerName", customerName)

	pi, err := paymentintent.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("paymentintent.New -> %w", err)
	}

	return Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

func (p *StripeProvider) IsMock() bool {
	return false
}
