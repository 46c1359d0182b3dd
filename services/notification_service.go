package services

import (
	"context"
	"net/http"
	"restaurant-platform/models"
	"restaurant-platform/repository"

	"github.com/google/uuid"
)

// NotificationService exposes the tenant's inbox.
type NotificationService interface {
	ListForRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Notification, *ServiceError)
	MarkRead(ctx context.Context, id int64, restaurantID uuid.UUID) *ServiceError
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListForRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Notification, *ServiceError) {
	list, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	return list, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64, restaurantID uuid.UUID) *ServiceError {
	affected, err := s.repo.MarkRead(ctx, id, restaurantID)
	if err != nil {
		return newError(http.StatusInternalServerError, err.Error())
	}
	if affected == 0 {
		return newError(http.StatusNotFound, "notification not found")
	}
	return nil
}
