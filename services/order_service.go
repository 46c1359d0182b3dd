package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"restaurant-platform/models"
	"restaurant-platform/providers"
	"restaurant-platform/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validOrderTypes = map[string]bool{
	models.OrderTypeDelivery:    true,
	models.OrderTypePickup:      true,
	models.OrderTypeReservation: true,
}

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusPreparing: true,
	models.OrderStatusReady:     true,
	models.OrderStatusCompleted: true,
	models.OrderStatusCancelled: true,
}

// ValidStatusChange reports whether an order may move from current to next.
// Any target from the enumerated set is accepted; a stricter transition
// table can be substituted here without touching callers.
func ValidStatusChange(current, next string) bool {
	return validOrderStatuses[next]
}

// OrderService covers order intake and the tenant's order board.
type OrderService interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderConfirmation, *ServiceError)
	ListBySlug(ctx context.Context, slug string) ([]models.Order, *ServiceError)
	UpdateStatus(ctx context.Context, id int64, restaurantID uuid.UUID, status string) (*models.Order, *ServiceError)
}

type orderService struct {
	restaurantRepo  repository.RestaurantRepository
	orderRepo       repository.OrderRepository
	notifier        providers.OrderNotifier
	logger          *zap.Logger
	dispatchTimeout time.Duration
	dispatched      chan struct{} // closed-loop hook for tests, may be nil
}

// NewOrderService creates an OrderService.
func NewOrderService(
	restaurantRepo repository.RestaurantRepository,
	orderRepo repository.OrderRepository,
	notifier providers.OrderNotifier,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		restaurantRepo:  restaurantRepo,
		orderRepo:       orderRepo,
		notifier:        notifier,
		logger:          logger,
		dispatchTimeout: 5 * time.Second,
	}
}

// Create validates the intake request, persists the order with its inbox
// entry, and fires the external push. Dispatch failures never reach the
// caller: order durability must not depend on the messaging service.
func (s *orderService) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderConfirmation, *ServiceError) {
	restaurant, err := s.restaurantRepo.FindBySlug(ctx, req.RestaurantSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(http.StatusNotFound, "restaurant not found")
		}
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	if !restaurant.IsActive {
		return nil, newError(http.StatusNotFound, "restaurant not found")
	}

	if len(req.Items) == 0 {
		return nil, newError(http.StatusBadRequest, "order must contain at least one item")
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, newError(http.StatusBadRequest, fmt.Sprintf("invalid quantity for %q", line.Name))
		}
		if line.Price < 0 {
			return nil, newError(http.StatusBadRequest, fmt.Sprintf("invalid price for %q", line.Name))
		}
	}
	if req.CustomerInfo.Phone == "" {
		return nil, newError(http.StatusBadRequest, "customer phone is required")
	}
	if !validOrderTypes[req.CustomerInfo.Type] {
		return nil, newError(http.StatusBadRequest, "invalid order type")
	}

	var total int64
	for _, line := range req.Items {
		total += line.Price * int64(line.Quantity)
	}

	order := &models.Order{
		RestaurantID:    restaurant.ID,
		OrderNumber:     newOrderNumber(),
		Items:           req.Items,
		CustomerName:    req.CustomerInfo.Name,
		CustomerPhone:   req.CustomerInfo.Phone,
		CustomerAddress: req.CustomerInfo.Address,
		OrderType:       req.CustomerInfo.Type,
		TotalPrice:      total,
		Status:          models.OrderStatusPending,
		Notes:           req.Notes,
	}
	notification := &models.Notification{
		RestaurantID: restaurant.ID,
		Message:      fmt.Sprintf("New order %s", order.OrderNumber),
		Type:         models.NotificationTypeNewOrder,
	}

	if err := s.orderRepo.CreateWithNotification(ctx, order, notification); err != nil {
		s.logger.Error("order persistence failed",
			zap.String("slug", req.RestaurantSlug),
			zap.Error(err),
		)
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	s.dispatch(restaurant, order)

	return &models.OrderConfirmation{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.TotalPrice,
		Status:      order.Status,
	}, nil
}

// dispatch runs the external push detached from the request, bounded by its
// own deadline, with the outcome only logged.
func (s *orderService) dispatch(restaurant *models.Restaurant, order *models.Order) {
	go func() {
		defer func() {
			if s.dispatched != nil {
				select {
				case s.dispatched <- struct{}{}:
				default:
				}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.dispatchTimeout)
		defer cancel()

		if err := s.notifier.NotifyNewOrder(ctx, restaurant, order); err != nil {
			s.logger.Warn("order notification dispatch failed",
				zap.String("order_number", order.OrderNumber),
				zap.Error(err),
			)
			return
		}
		s.logger.Info("order notification dispatched",
			zap.String("order_number", order.OrderNumber),
		)
	}()
}

func (s *orderService) ListBySlug(ctx context.Context, slug string) ([]models.Order, *ServiceError) {
	orders, err := s.orderRepo.ListBySlug(ctx, slug)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id int64, restaurantID uuid.UUID, status string) (*models.Order, *ServiceError) {
	if !ValidStatusChange("", status) {
		return nil, newError(http.StatusBadRequest, "invalid order status")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(http.StatusNotFound, "order not found")
		}
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	if order.RestaurantID != restaurantID {
		return nil, newError(http.StatusForbidden, "order belongs to another restaurant")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	order.Status = status
	return order, nil
}

// newOrderNumber derives an order number from the wall clock plus a random
// suffix, so two orders in the same millisecond still differ. The column's
// unique index backs this up.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:6])
}
