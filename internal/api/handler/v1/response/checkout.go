package response

type CreatePaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
	BookingID    string `json:"bookingId"`
}

// PaymentDetails echoes back how a mock payment was made: card fields
// for card payments, bank fields otherwise.
type PaymentDetails struct {
	Type           string `json:"type"`
	Last4          string `json:"last4,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	BankName       string `json:"bankName,omitempty"`
	AccountLast4   string `json:"accountLast4,omitempty"`
}

type ConfirmMockPayment struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	BookingID      string         `json:"bookingId"`
	PaymentMethod  string         `json:"paymentMethod"`
	TransactionID  string         `json:"transactionId"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
}

type DeleteEvent struct {
	Success bool `json:"success"`
}
