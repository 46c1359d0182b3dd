package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a registered tenant account. Credentials and Telegram
// bot settings are never serialized in API responses.
type Restaurant struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug             string    `gorm:"type:varchar(100);unique;not null" json:"slug"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Logo             string    `gorm:"type:varchar(10);default:'🍔'" json:"logo"`
	Username         string    `gorm:"type:varchar(100);unique;not null" json:"-"`
	PasswordHash     string    `gorm:"type:varchar(255);not null" json:"-"`
	TelegramBotToken string    `gorm:"type:varchar(255)" json:"-"`
	TelegramChatID   string    `gorm:"type:varchar(100)" json:"-"`
	Phone            string    `gorm:"type:varchar(20)" json:"phone"`
	Address          string    `gorm:"type:text" json:"address"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	Rating           float64   `gorm:"default:0" json:"rating"`
	ReviewCount      int       `gorm:"default:0" json:"review_count"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// RestaurantPublic is the projection returned by listing endpoints.
type RestaurantPublic struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
	Logo string    `json:"logo"`
}

// RegisterRequest is the payload for tenant registration.
type RegisterRequest struct {
	Name             string `json:"name" binding:"required"`
	Slug             string `json:"slug" binding:"required"`
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password" binding:"required,min=8"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	TelegramBotToken string `json:"telegram_bot_token"`
	TelegramChatID   string `json:"telegram_chat_id"`
}

// LoginRequest is the payload for tenant login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Slug     string `json:"restaurant_slug" binding:"required"`
}
