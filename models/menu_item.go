package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem belongs to exactly one restaurant. Price is stored in the
// smallest currency unit.
type MenuItem struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	Price        int64      `gorm:"not null" json:"price"`
	Category     string     `gorm:"type:varchar(100);not null" json:"category"`
	Image        string     `gorm:"type:varchar(10);default:'🍽️'" json:"image"`
	Available    bool       `gorm:"default:true" json:"available"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// CreateMenuItemRequest is the payload for adding a menu item. Price is a
// pointer so that a free item (price 0) survives the required check.
type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       *int64 `json:"price" binding:"required,gte=0"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image"`
}

// UpdateAvailabilityRequest toggles a single flag without resending the item.
type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
