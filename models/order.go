package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order type constants.
const (
	OrderTypeDelivery    = "delivery"
	OrderTypePickup      = "pickup"
	OrderTypeReservation = "reservation"
)

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderLine is one ordered product captured as a snapshot at order time;
// later catalog price changes never affect it.
type OrderLine struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderLines is stored as a JSONB column.
type OrderLines []OrderLine

func (l OrderLines) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *OrderLines) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for OrderLines: %T", value)
	}
}

// Order is the GORM model persisted in Postgres.
type Order struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Restaurant      Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OrderNumber     string     `gorm:"type:varchar(50);unique;not null" json:"order_number"`
	Items           OrderLines `gorm:"type:jsonb;not null" json:"items"`
	CustomerName    string     `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerPhone   string     `gorm:"type:varchar(20);not null" json:"customer_phone"`
	CustomerAddress string     `gorm:"type:text" json:"customer_address"`
	OrderType       string     `gorm:"type:varchar(20);not null" json:"order_type"`
	TotalPrice      int64      `gorm:"not null" json:"total_price"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes           string     `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// CustomerInfo describes who placed the order and how it is fulfilled.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	Type    string `json:"type" binding:"required"`
}

// CreateOrderRequest is the intake payload.
type CreateOrderRequest struct {
	RestaurantSlug string       `json:"restaurant_slug" binding:"required"`
	Items          []OrderLine  `json:"items" binding:"required"`
	CustomerInfo   CustomerInfo `json:"customer_info" binding:"required"`
	Notes          string       `json:"notes"`
}

// UpdateOrderStatusRequest is the payload for status changes.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderConfirmation is returned to the customer after intake.
type OrderConfirmation struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`
	Total       int64  `json:"total"`
	Status      string `json:"status"`
}
