package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"restaurant-platform/models"
	"restaurant-platform/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReviewService appends reviews and maintains the per-restaurant aggregate.
type ReviewService interface {
	Create(ctx context.Context, slug string, req *models.CreateReviewRequest) (*models.Review, *ServiceError)
	ListBySlug(ctx context.Context, slug string) ([]models.Review, *ServiceError)
}

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	logger         *zap.Logger
}

// NewReviewService creates a ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	restaurantRepo repository.RestaurantRepository,
	logger *zap.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// Create appends the review, then recomputes the restaurant's aggregate
// rating as the mean over all of its reviews, rounded to one decimal.
// Full recomputation is O(n) per review; fine at this scale.
func (s *reviewService) Create(ctx context.Context, slug string, req *models.CreateReviewRequest) (*models.Review, *ServiceError) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, newError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	restaurant, err := s.restaurantRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(http.StatusNotFound, "restaurant not found")
		}
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	review := &models.Review{
		RestaurantID: restaurant.ID,
		UserName:     req.UserName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	avg, count, err := s.reviewRepo.Aggregate(ctx, restaurant.ID)
	if err != nil {
		s.logger.Error("rating aggregate query failed",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	rounded := math.Round(avg*10) / 10
	if err := s.restaurantRepo.UpdateRating(ctx, restaurant.ID, rounded, count); err != nil {
		s.logger.Error("rating update failed",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	return review, nil
}

func (s *reviewService) ListBySlug(ctx context.Context, slug string) ([]models.Review, *ServiceError) {
	restaurant, err := s.restaurantRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(http.StatusNotFound, "restaurant not found")
		}
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	reviews, err := s.reviewRepo.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	return reviews, nil
}
