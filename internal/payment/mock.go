package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// MockIntentPrefix marks intents synthesized by the mock provider.
// Only intents carrying it may be confirmed through the mock
// confirmation endpoint.
const MockIntentPrefix = "pi_mock_"

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MockProvider synthesizes payment intents locally. It is selected
// when mock payments are enabled or no Stripe key is configured.
type MockProvider struct {
	currency string
}

func NewMockProvider(currency string) *MockProvider {
	return &MockProvider{
		currency: currency,
	}
}

func (p *MockProvider) CreateIntent(_ context.Context, amount int, _, _ string) (Intent, error) {
	id := fmt.Sprintf("%v%v_%v", MockIntentPrefix, time.Now().UnixMilli(), randomSuffix(9))

	return Intent{
		ID:           id,
		ClientSecret: id + "_secret_mock",
		Amount:       amount,
		Currency:     p.currency,
		Status:       "requires_payment_method",
	}, nil
}

func (p *MockProvider) IsMock() bool {
	return true
}

// MockTransactionID is the transaction reference reported by a mock
// confirmation.
func MockTransactionID() string {
	return fmt.Sprintf("txn_mock_%v", time.Now().UnixMilli())
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}

	return string(b)
}
