package repository

import (
	"context"
	"restaurant-platform/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository defines data-access operations for the tenant inbox.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Notification, error)
	MarkRead(ctx context.Context, id int64, restaurantID uuid.UUID) (int64, error)
}

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new GormNotificationRepository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *GormNotificationRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// MarkRead flips the read flag; the restaurant filter stops tenants from
// touching each other's inbox. Returns the number of rows affected.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id int64, restaurantID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
