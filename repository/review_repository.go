package repository

import (
	"context"
	"restaurant-platform/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository defines data-access operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Review, error)
	Aggregate(ctx context.Context, restaurantID uuid.UUID) (avg float64, count int64, err error)
	Count(ctx context.Context) (int64, error)
}

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new GormReviewRepository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *GormReviewRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Aggregate scans all ratings of the restaurant and returns their mean and
// count. Full recomputation, O(n) per call.
func (r *GormReviewRepository) Aggregate(ctx context.Context, restaurantID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}

func (r *GormReviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Count(&count).Error
	return count, err
}
