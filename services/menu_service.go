package services

import (
	"context"
	"errors"
	"net/http"
	"restaurant-platform/models"
	"restaurant-platform/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuService covers catalog management for tenant owners and public reads.
type MenuService interface {
	ListBySlug(ctx context.Context, slug string) ([]models.MenuItem, *ServiceError)
	Create(ctx context.Context, restaurantID uuid.UUID, req *models.CreateMenuItemRequest) (*models.MenuItem, *ServiceError)
	SetAvailability(ctx context.Context, id int64, restaurantID uuid.UUID, available bool) (*models.MenuItem, *ServiceError)
	Delete(ctx context.Context, id int64, restaurantID uuid.UUID) *ServiceError
}

type menuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a MenuService.
func NewMenuService(repo repository.MenuRepository) MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) ListBySlug(ctx context.Context, slug string) ([]models.MenuItem, *ServiceError) {
	items, err := s.repo.ListBySlug(ctx, slug)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	return items, nil
}

func (s *menuService) Create(ctx context.Context, restaurantID uuid.UUID, req *models.CreateMenuItemRequest) (*models.MenuItem, *ServiceError) {
	if req.Price == nil {
		return nil, newError(http.StatusBadRequest, "price is required")
	}
	if *req.Price < 0 {
		return nil, newError(http.StatusBadRequest, "price must not be negative")
	}

	item := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		Category:     req.Category,
		Image:        req.Image,
		Available:    true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	return item, nil
}

// SetAvailability toggles the flag without rewriting the rest of the row.
func (s *menuService) SetAvailability(ctx context.Context, id int64, restaurantID uuid.UUID, available bool) (*models.MenuItem, *ServiceError) {
	item, svcErr := s.ownedItem(ctx, id, restaurantID)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := s.repo.UpdateAvailability(ctx, id, available); err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	item.Available = available
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id int64, restaurantID uuid.UUID) *ServiceError {
	if _, svcErr := s.ownedItem(ctx, id, restaurantID); svcErr != nil {
		return svcErr
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return newError(http.StatusInternalServerError, err.Error())
	}
	return nil
}

func (s *menuService) ownedItem(ctx context.Context, id int64, restaurantID uuid.UUID) (*models.MenuItem, *ServiceError) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(http.StatusNotFound, "menu item not found")
		}
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	if item.RestaurantID != restaurantID {
		return nil, newError(http.StatusForbidden, "menu item belongs to another restaurant")
	}
	return item, nil
}
