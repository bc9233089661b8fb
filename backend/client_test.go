package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shortlet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, zap.NewNop())
}

func TestCheckAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties/prop-1/availability", r.URL.Path)
		assert.Equal(t, "2025-06-10", r.URL.Query().Get("checkIn"))
		assert.Equal(t, "2025-06-12", r.URL.Query().Get("checkOut"))
		json.NewEncoder(w).Encode(map[string]any{"available": true})
	})

	available, err := client.CheckAvailability(context.Background(), "prop-1", "2025-06-10", "2025-06-12")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCreateBookingReturnsRawShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "prop-1", body["propertyId"])
		assert.Equal(t, "pay_onsite", body["paymentMethod"])

		json.NewEncoder(w).Encode(map[string]any{
			"booking": map[string]any{"_id": "bk-1", "status": "pending"},
		})
	})

	raw, err := client.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		PropertyID:    "prop-1",
		CheckInDate:   "2025-06-10",
		CheckOutDate:  "2025-06-12",
		GuestCount:    2,
		PaymentMethod: models.PaymentPayOnsite,
	})
	require.NoError(t, err)

	booking, ok := raw["booking"].(map[string]any)
	require.True(t, ok, "raw shape preserved for defensive extraction")
	assert.Equal(t, "bk-1", booking["_id"])
}

func TestInitializePaymentTopLevel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"authorization_url": "https://pay.example.com/abc",
			"reference":         "ref-1",
		})
	})

	result, err := client.InitializePayment(context.Background(), "bk-1", "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/abc", result.AuthorizationURL)
	assert.Equal(t, "ref-1", result.Reference)
}

func TestInitializePaymentNestedUnderData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"authorization_url": "https://pay.example.com/nested",
				"reference":         "ref-2",
			},
		})
	})

	result, err := client.InitializePayment(context.Background(), "bk-1", "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/nested", result.AuthorizationURL)
	assert.Equal(t, "ref-2", result.Reference)
}

func TestAPIErrorSurfacesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"error": "dates no longer available"})
	})

	_, err := client.CreateBooking(context.Background(), "user-1", models.BookingRequest{PropertyID: "prop-1"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "dates no longer available")
}

func TestListPropertiesFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(map[string]any{
			"properties": []map[string]any{{"id": "prop-1", "title": "Lekki 2-bed"}},
		})
	})

	properties, err := client.ListProperties(context.Background(), models.PropertyFilter{Limit: 10, Status: "active"})
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "prop-1", properties[0].ID)
}
