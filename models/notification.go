package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeNewOrder = "new_order"
	NotificationTypeInfo     = "info"
)

// Notification is a tenant-facing inbox entry created alongside its order.
type Notification struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	OrderID      int64     `gorm:"not null" json:"order_id"`
	Order        Order     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Type         string    `gorm:"type:varchar(20);default:'info'" json:"type"`
	IsRead       bool      `gorm:"default:false" json:"is_read"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
