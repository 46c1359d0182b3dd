package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is an append-only customer rating. It references a restaurant but
// is removed together with it (cascade on tenant delete).
type Review struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	UserName     string    `gorm:"type:varchar(255);not null" json:"user_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CreateReviewRequest is the payload for leaving a review.
type CreateReviewRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required"`
}

// Stats is the public platform summary.
type Stats struct {
	TotalRestaurants int64    `json:"total_restaurants"`
	TotalReviews     int64    `json:"total_reviews"`
	Categories       []string `json:"categories"`
}
