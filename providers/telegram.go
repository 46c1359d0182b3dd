package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"restaurant-platform/models"
	"strings"
	"time"
)

const telegramBaseURL = "https://api.telegram.org"

var orderTypeLabels = map[string]string{
	models.OrderTypeDelivery:    "Delivery",
	models.OrderTypePickup:      "Pickup",
	models.OrderTypeReservation: "Table reservation",
}

// TelegramNotifier implements OrderNotifier using the Telegram Bot API.
// Credentials are per-tenant; a restaurant without them is skipped silently.
type TelegramNotifier struct {
	baseURL    string
	httpClient *http.Client
}

// NewTelegramNotifier creates a new TelegramNotifier.
func NewTelegramNotifier() *TelegramNotifier {
	return &TelegramNotifier{
		baseURL: telegramBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewTelegramNotifierWithBaseURL is used by tests to point at a stub server.
func NewTelegramNotifierWithBaseURL(baseURL string) *TelegramNotifier {
	n := NewTelegramNotifier()
	n.baseURL = baseURL
	return n
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NotifyNewOrder sends a single sendMessage call. No retry, no delivery
// confirmation is tracked.
func (t *TelegramNotifier) NotifyNewOrder(ctx context.Context, restaurant *models.Restaurant, order *models.Order) error {
	if restaurant.TelegramBotToken == "" || restaurant.TelegramChatID == "" {
		return nil
	}

	body := sendMessageRequest{
		ChatID:    restaurant.TelegramChatID,
		Text:      RenderOrderMessage(restaurant, order),
		ParseMode: "Markdown",
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, restaurant.TelegramBotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var out sendMessageResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !out.OK {
		return fmt.Errorf("telegram API rejected message: %s", out.Description)
	}
	return nil
}

// RenderOrderMessage builds the deterministic alert text: order number,
// creation time, customer contact, fulfillment type, itemized lines with
// per-line subtotals, grand total and optional notes.
func RenderOrderMessage(restaurant *models.Restaurant, order *models.Order) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🔔 *New order at %s*\n\n", restaurant.Name)
	fmt.Fprintf(&sb, "📋 Order number: `%s`\n", order.OrderNumber)
	fmt.Fprintf(&sb, "🕐 Time: %s\n\n", order.CreatedAt.Format("2006-01-02 15:04:05"))

	sb.WriteString("👤 Customer:\n")
	fmt.Fprintf(&sb, "📱 Phone: %s\n", order.CustomerPhone)
	if order.CustomerAddress != "" {
		fmt.Fprintf(&sb, "📍 Address: %s\n", order.CustomerAddress)
	}

	label := orderTypeLabels[order.OrderType]
	if label == "" {
		label = order.OrderType
	}
	fmt.Fprintf(&sb, "\n🚚 Order type: %s\n\n", label)

	sb.WriteString("📦 *Items:*\n")
	for _, line := range order.Items {
		fmt.Fprintf(&sb, "• %s × %d — %d\n", line.Name, line.Quantity, line.Price*int64(line.Quantity))
	}

	fmt.Fprintf(&sb, "\n💰 *Total: %d*\n", order.TotalPrice)
	if order.Notes != "" {
		fmt.Fprintf(&sb, "\n📝 Notes: %s\n", order.Notes)
	}
	sb.WriteString("\n⏳ Status: pending")

	return sb.String()
}
