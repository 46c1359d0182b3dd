package repository

import (
	"context"
	"restaurant-platform/models"

	"gorm.io/gorm"
)

// OrderRepository defines data-access operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	CreateWithNotification(ctx context.Context, order *models.Order, notification *models.Notification) error
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	ListBySlug(ctx context.Context, slug string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new GormOrderRepository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateWithNotification persists the order and its inbox entry in one
// transaction. The external push stays outside this boundary.
func (r *GormOrderRepository) CreateWithNotification(ctx context.Context, order *models.Order, notification *models.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		notification.OrderID = order.ID
		return tx.Create(notification).Error
	})
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) ListBySlug(ctx context.Context, slug string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Where("restaurants.slug = ?", slug).
		Order("orders.created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
