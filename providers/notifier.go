package providers

import (
	"context"
	"restaurant-platform/models"
)

// OrderNotifier pushes a best-effort alert about a new order to the
// tenant's external messaging channel. Implementations make exactly one
// delivery attempt; callers absorb any failure.
type OrderNotifier interface {
	NotifyNewOrder(ctx context.Context, restaurant *models.Restaurant, order *models.Order) error
}
