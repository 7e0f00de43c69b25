// Package payment abstracts the payment gateway behind a Provider so
// the checkout flow is identical whether charges go through Stripe or
// the deterministic mock used in development.
package payment

import "context"

// Intent is one attempted charge as reported by the provider.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int
	Currency     string
	Status       string
}

type Provider interface {
	// CreateIntent registers a charge of amount minor currency units
	// and returns the intent whose client secret drives the client-side
	// confirmation UI.
	CreateIntent(ctx context.Context, amount int, customerEmail, customerName string) (Intent, error)

	// IsMock reports whether confirmations are simulated rather than
	// driven by the real gateway.
	IsMock() bool
}
