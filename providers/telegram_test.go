package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"restaurant-platform/models"
	"restaurant-platform/providers"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testRestaurant() *models.Restaurant {
	return &models.Restaurant{
		ID:               uuid.New(),
		Slug:             "pizza-place",
		Name:             "Pizza Place",
		TelegramBotToken: "123:ABC",
		TelegramChatID:   "-100987",
	}
}

func testOrder() *models.Order {
	return &models.Order{
		ID:          1,
		OrderNumber: "ORD-1700000000000-abc123",
		Items: models.OrderLines{
			{Name: "Margherita", Price: 250, Quantity: 2},
			{Name: "Cola", Price: 100, Quantity: 3},
		},
		CustomerPhone: "+995551234567",
		OrderType:     models.OrderTypePickup,
		TotalPrice:    800,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestNotifyNewOrder_SendsMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer server.Close()

	notifier := providers.NewTelegramNotifierWithBaseURL(server.URL)
	err := notifier.NotifyNewOrder(context.Background(), testRestaurant(), testOrder())
	assert.NoError(t, err)

	assert.Equal(t, "/bot123:ABC/sendMessage", gotPath)
	assert.Equal(t, "-100987", gotBody["chat_id"])
	assert.Equal(t, "Markdown", gotBody["parse_mode"])
	assert.Contains(t, gotBody["text"], "ORD-1700000000000-abc123")
}

func TestNotifyNewOrder_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "chat not found"})
	}))
	defer server.Close()

	notifier := providers.NewTelegramNotifierWithBaseURL(server.URL)
	err := notifier.NotifyNewOrder(context.Background(), testRestaurant(), testOrder())
	assert.Error(t, err)
}

func TestNotifyNewOrder_APIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "bot was blocked"})
	}))
	defer server.Close()

	notifier := providers.NewTelegramNotifierWithBaseURL(server.URL)
	err := notifier.NotifyNewOrder(context.Background(), testRestaurant(), testOrder())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bot was blocked")
}

func TestNotifyNewOrder_SkipsWithoutCredentials(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	restaurant := testRestaurant()
	restaurant.TelegramBotToken = ""

	notifier := providers.NewTelegramNotifierWithBaseURL(server.URL)
	err := notifier.NotifyNewOrder(context.Background(), restaurant, testOrder())
	assert.NoError(t, err)
	assert.Zero(t, calls)
}

func TestRenderOrderMessage(t *testing.T) {
	text := providers.RenderOrderMessage(testRestaurant(), testOrder())

	assert.Contains(t, text, "*New order at Pizza Place*")
	assert.Contains(t, text, "`ORD-1700000000000-abc123`")
	assert.Contains(t, text, "2024-03-01 12:30:00")
	assert.Contains(t, text, "+995551234567")
	assert.Contains(t, text, "Order type: Pickup")
	assert.Contains(t, text, "• Margherita × 2 — 500")
	assert.Contains(t, text, "• Cola × 3 — 300")
	assert.Contains(t, text, "*Total: 800*")
	assert.Contains(t, text, "Status: pending")

	// blank address and notes stay out of the message
	assert.NotContains(t, text, "Address:")
	assert.NotContains(t, text, "Notes:")
}

func TestRenderOrderMessage_DeliveryWithAddressAndNotes(t *testing.T) {
	order := testOrder()
	order.OrderType = models.OrderTypeDelivery
	order.CustomerAddress = "12 Rustaveli Ave"
	order.Notes = "no onions"

	text := providers.RenderOrderMessage(testRestaurant(), order)
	assert.Contains(t, text, "Order type: Delivery")
	assert.Contains(t, text, "Address: 12 Rustaveli Ave")
	assert.Contains(t, text, "Notes: no onions")
}
