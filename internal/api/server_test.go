package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventick/eventick-api/internal/api"
	"github.com/eventick/eventick-api/internal/config"
	"github.com/eventick/eventick-api/internal/domain"
	"github.com/eventick/eventick-api/internal/payment"
	"github.com/eventick/eventick-api/internal/repository/dao"
)

func newTestServer() *api.Server {
	return newTestServerWithEnv("test")
}

func newTestServerWithEnv(environment string) *api.Server {
	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        environment,
			BaseURL:            "localhost:5000",
			Port:               "5000",
			AllowedCORSDomains: []string{"http://localhost:5173"},
		},
		Gin: &config.GinConfig{
			Mode: gin.TestMode,
		},
		Payments: &config.PaymentsConfig{
			EnableMock: true,
			Currency:   "inr",
		},
	}

	store := dao.NewMemoryStore()
	return api.NewServer(conf, store, store, payment.NewMockProvider(conf.Payments.Currency))
}

func doJSON(t *testing.T, server *api.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.Router.ServeHTTP(recorder, req)

	return recorder
}

func createTestEvent(t *testing.T, server *api.Server) domain.Event {
	t.Helper()

	recorder := doJSON(t, server, http.MethodPost, "/api/events", gin.H{
		"event": gin.H{
			"title":       "Summer Music Festival",
			"description": "Three days of live music",
			"date":        "2026-09-12",
			"venue":       "Central Park Amphitheater",
			"location":    "New York, NY",
		},
		"ticketTypes": []gin.H{
			{"name": "General Admission", "description": "Standard entry", "price": 5000, "totalQuantity": 100},
			{"name": "VIP Pass", "description": "Premium access", "price": 12000, "totalQuantity": 20},
		},
		"seats": []gin.H{
			{"section": "Orchestra", "row": "A", "number": "1", "ticketType": "VIP Pass"},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var event domain.Event
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &event))
	require.NotEmpty(t, event.ID)

	return event
}

func TestHealthcheck(t *testing.T) {
	server := newTestServer()

	recorder := doJSON(t, server, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestEventEndpoints(t *testing.T) {
	server := newTestServer()
	event := createTestEvent(t, server)

	recorder := doJSON(t, server, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var events []domain.Event
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Music", events[0].Category)

	recorder = doJSON(t, server, http.MethodGet, "/api/events/"+event.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/events/missing", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/events/"+event.ID+"/ticket-types", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var ticketTypes []domain.TicketType
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ticketTypes))
	assert.Len(t, ticketTypes, 2)

	recorder = doJSON(t, server, http.MethodGet, "/api/events/"+event.ID+"/seats", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var seats []domain.Seat
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &seats))
	assert.Len(t, seats, 1)

	recorder = doJSON(t, server, http.MethodDelete, "/api/events/"+event.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())

	// Deleted events serve empty lists, never 404s.
	recorder = doJSON(t, server, http.MethodGet, "/api/events/"+event.ID+"/ticket-types", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestCreateEvent_ValidationFailure(t *testing.T) {
	server := newTestServer()

	recorder := doJSON(t, server, http.MethodPost, "/api/events", gin.H{
		"event": gin.H{
			"title": "No details",
		},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCheckoutFlow(t *testing.T) {
	server := newTestServer()
	event := createTestEvent(t, server)

	recorder := doJSON(t, server, http.MethodGet, "/api/events/"+event.ID+"/ticket-types", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var ticketTypes []domain.TicketType
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ticketTypes))

	var general domain.TicketType
	for _, tt := range ticketTypes {
		if tt.Name == "General Admission" {
			general = tt
		}
	}
	require.NotEmpty(t, general.ID)

	// 2 x 5000 plus the 10% service fee.
	recorder = doJSON(t, server, http.MethodPost, "/api/create-payment-intent", gin.H{
		"amount":        11000,
		"customerEmail": "jane@example.com",
		"customerName":  "Jane Doe",
		"cartItems": []gin.H{
			{"eventId": event.ID, "ticketTypeId": general.ID, "quantity": 2, "price": 5000},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var intentResp struct {
		ClientSecret string `json:"clientSecret"`
		BookingID    string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &intentResp))
	require.NotEmpty(t, intentResp.BookingID)
	require.Contains(t, intentResp.ClientSecret, "_secret_mock")

	paymentIntentID := intentResp.ClientSecret[:len(intentResp.ClientSecret)-len("_secret_mock")]

	recorder = doJSON(t, server, http.MethodPost, "/api/confirm-mock-payment", gin.H{
		"paymentIntentId": paymentIntentID,
		"paymentMethod":   "card",
		"paymentDetails":  gin.H{"last4": "4242", "cardholderName": "Jane Doe"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var confirmResp struct {
		Success        bool   `json:"success"`
		BookingID      string `json:"bookingId"`
		PaymentMethod  string `json:"paymentMethod"`
		TransactionID  string `json:"transactionId"`
		PaymentDetails struct {
			Type           string `json:"type"`
			Last4          string `json:"last4"`
			CardholderName string `json:"cardholderName"`
		} `json:"paymentDetails"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &confirmResp))
	assert.True(t, confirmResp.Success)
	assert.Equal(t, intentResp.BookingID, confirmResp.BookingID)
	assert.Equal(t, "card", confirmResp.PaymentMethod)
	assert.Contains(t, confirmResp.TransactionID, "txn_mock_")
	assert.Equal(t, "card", confirmResp.PaymentDetails.Type)
	assert.Equal(t, "4242", confirmResp.PaymentDetails.Last4)
	assert.Equal(t, "Jane Doe", confirmResp.PaymentDetails.CardholderName)

	recorder = doJSON(t, server, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var bookings []domain.BookingDetails
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, intentResp.BookingID, bookings[0].ID)
	assert.Equal(t, 11000, bookings[0].TotalAmount)
	assert.Equal(t, domain.PaymentStatusSucceeded, bookings[0].PaymentStatus)
	assert.Equal(t, event.ID, bookings[0].Event.ID)
	require.Len(t, bookings[0].Items, 1)
	require.NotNil(t, bookings[0].Items[0].TicketType)
	assert.Equal(t, "General Admission", bookings[0].Items[0].TicketType.Name)

	// Inventory reflects the purchase.
	recorder = doJSON(t, server, http.MethodGet, "/api/events/"+event.ID+"/ticket-types", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ticketTypes))
	for _, tt := range ticketTypes {
		if tt.ID == general.ID {
			assert.Equal(t, 98, tt.AvailableQuantity)
		}
	}
}

func TestDebugBookings(t *testing.T) {
	server := newTestServerWithEnv("development")
	event := createTestEvent(t, server)

	recorder := doJSON(t, server, http.MethodGet, "/api/events/"+event.ID+"/ticket-types", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var ticketTypes []domain.TicketType
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ticketTypes))
	require.NotEmpty(t, ticketTypes)

	price := ticketTypes[0].Price
	recorder = doJSON(t, server, http.MethodPost, "/api/create-payment-intent", gin.H{
		"amount":        price + price/10,
		"customerEmail": "jane@example.com",
		"customerName":  "Jane Doe",
		"cartItems": []gin.H{
			{"eventId": event.ID, "ticketTypeId": ticketTypes[0].ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Pending bookings never reach /api/bookings but do show up here.
	recorder = doJSON(t, server, http.MethodGet, "/api/debug/bookings", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var debugResp struct {
		Bookings []domain.Booking `json:"bookings"`
		Events   []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"events"`
		TotalBookings      int `json:"totalBookings"`
		SuccessfulBookings int `json:"successfulBookings"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &debugResp))
	assert.Equal(t, 1, debugResp.TotalBookings)
	assert.Equal(t, 0, debugResp.SuccessfulBookings)
	require.Len(t, debugResp.Bookings, 1)
	assert.Equal(t, domain.PaymentStatusPending, debugResp.Bookings[0].PaymentStatus)
	require.Len(t, debugResp.Events, 1)
	assert.Equal(t, event.ID, debugResp.Events[0].ID)
}

func TestDebugBookings_NotMountedOutsideDevelopment(t *testing.T) {
	server := newTestServer()

	recorder := doJSON(t, server, http.MethodGet, "/api/debug/bookings", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCheckout_BadRequests(t *testing.T) {
	server := newTestServer()
	event := createTestEvent(t, server)

	recorder := doJSON(t, server, http.MethodGet, "/api/events/"+event.ID+"/ticket-types", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var ticketTypes []domain.TicketType
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ticketTypes))
	require.NotEmpty(t, ticketTypes)

	t.Run("missing email", func(t *testing.T) {
		recorder := doJSON(t, server, http.MethodPost, "/api/create-payment-intent", gin.H{
			"amount":       5500,
			"customerName": "Jane Doe",
			"cartItems": []gin.H{
				{"eventId": event.ID, "ticketTypeId": ticketTypes[0].ID, "quantity": 1},
			},
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("amount mismatch", func(t *testing.T) {
		recorder := doJSON(t, server, http.MethodPost, "/api/create-payment-intent", gin.H{
			"amount":        1,
			"customerEmail": "jane@example.com",
			"customerName":  "Jane Doe",
			"cartItems": []gin.H{
				{"eventId": event.ID, "ticketTypeId": ticketTypes[0].ID, "quantity": 1},
			},
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown ticket type", func(t *testing.T) {
		recorder := doJSON(t, server, http.MethodPost, "/api/create-payment-intent", gin.H{
			"amount":        5500,
			"customerEmail": "jane@example.com",
			"customerName":  "Jane Doe",
			"cartItems": []gin.H{
				{"eventId": event.ID, "ticketTypeId": "missing", "quantity": 1},
			},
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("oversell conflicts", func(t *testing.T) {
		var vip domain.TicketType
		for _, tt := range ticketTypes {
			if tt.Name == "VIP Pass" {
				vip = tt
			}
		}
		require.NotEmpty(t, vip.ID)

		subtotal := vip.Price * (vip.TotalQuantity + 1)
		recorder := doJSON(t, server, http.MethodPost, "/api/create-payment-intent", gin.H{
			"amount":        subtotal + subtotal/10,
			"customerEmail": "jane@example.com",
			"customerName":  "Jane Doe",
			"cartItems": []gin.H{
				{"eventId": event.ID, "ticketTypeId": vip.ID, "quantity": vip.TotalQuantity + 1},
			},
		})
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("non-mock intent rejected on confirm", func(t *testing.T) {
		recorder := doJSON(t, server, http.MethodPost, "/api/confirm-mock-payment", gin.H{
			"paymentIntentId": fmt.Sprintf("pi_%v", "stripe_real"),
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown mock intent", func(t *testing.T) {
		recorder := doJSON(t, server, http.MethodPost, "/api/confirm-mock-payment", gin.H{
			"paymentIntentId": "pi_mock_never_created",
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
