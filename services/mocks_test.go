package services_test

import (
	"context"
	"restaurant-platform/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shared hand-written mocks for the service tests in this package.

// ---- mock restaurant repository ----

type mockRestaurantRepo struct {
	restaurant  *models.Restaurant
	findErr     error
	registered  *models.Restaurant
	registerErr error
	listing     []models.RestaurantPublic
	listErr     error
	deleted     []uuid.UUID
	deleteErr   error
	ratingID    uuid.UUID
	rating      float64
	ratingCount int64
	ratingErr   error
	activeCount int64
}

func (m *mockRestaurantRepo) Create(_ context.Context, _ *models.Restaurant) error { return nil }

func (m *mockRestaurantRepo) Register(_ context.Context, r *models.Restaurant) error {
	if m.registerErr != nil {
		return m.registerErr
	}
	m.registered = r
	return nil
}

func (m *mockRestaurantRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Restaurant, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.restaurant == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.restaurant, nil
}

func (m *mockRestaurantRepo) FindBySlug(_ context.Context, slug string) (*models.Restaurant, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.restaurant == nil || m.restaurant.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return m.restaurant, nil
}

func (m *mockRestaurantRepo) FindByUsernameAndSlug(_ context.Context, username, slug string) (*models.Restaurant, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.restaurant == nil || m.restaurant.Username != username || m.restaurant.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return m.restaurant, nil
}

func (m *mockRestaurantRepo) ExistsBySlugOrUsername(_ context.Context, _, _ string) (bool, error) {
	return m.restaurant != nil, nil
}

func (m *mockRestaurantRepo) ListActive(_ context.Context) ([]models.RestaurantPublic, error) {
	return m.listing, m.listErr
}

func (m *mockRestaurantRepo) UpdateRating(_ context.Context, id uuid.UUID, rating float64, count int64) error {
	if m.ratingErr != nil {
		return m.ratingErr
	}
	m.ratingID, m.rating, m.ratingCount = id, rating, count
	return nil
}

func (m *mockRestaurantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRestaurantRepo) CountActive(_ context.Context) (int64, error) {
	return m.activeCount, nil
}

// ---- mock review repository ----

type mockReviewRepo struct {
	created   []*models.Review
	createErr error
	reviews   []models.Review
	avg       float64
	count     int64
	aggErr    error
	total     int64
}

func (m *mockReviewRepo) Create(_ context.Context, r *models.Review) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, r)
	return nil
}

func (m *mockReviewRepo) ListByRestaurant(_ context.Context, _ uuid.UUID) ([]models.Review, error) {
	return m.reviews, nil
}

func (m *mockReviewRepo) Aggregate(_ context.Context, _ uuid.UUID) (float64, int64, error) {
	return m.avg, m.count, m.aggErr
}

func (m *mockReviewRepo) Count(_ context.Context) (int64, error) { return m.total, nil }

// ---- mock menu repository ----

type mockMenuRepo struct {
	item         *models.MenuItem
	findErr      error
	created      *models.MenuItem
	createErr    error
	items        []models.MenuItem
	availableID  int64
	availableSet *bool
	availableErr error
	deleted      []int64
	deleteErr    error
	categories   []string
}

func (m *mockMenuRepo) Create(_ context.Context, item *models.MenuItem) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = item
	return nil
}

func (m *mockMenuRepo) FindByID(_ context.Context, _ int64) (*models.MenuItem, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.item, nil
}

func (m *mockMenuRepo) ListBySlug(_ context.Context, _ string) ([]models.MenuItem, error) {
	return m.items, nil
}

func (m *mockMenuRepo) UpdateAvailability(_ context.Context, id int64, available bool) error {
	if m.availableErr != nil {
		return m.availableErr
	}
	m.availableID = id
	m.availableSet = &available
	return nil
}

func (m *mockMenuRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockMenuRepo) DistinctCategories(_ context.Context) ([]string, error) {
	return m.categories, nil
}

// ---- mock notification repository ----

type mockNotificationRepo struct {
	list     []models.Notification
	listErr  error
	affected int64
	markErr  error
	markedID int64
}

func (m *mockNotificationRepo) Create(_ context.Context, _ *models.Notification) error { return nil }

func (m *mockNotificationRepo) ListByRestaurant(_ context.Context, _ uuid.UUID) ([]models.Notification, error) {
	return m.list, m.listErr
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id int64, _ uuid.UUID) (int64, error) {
	if m.markErr != nil {
		return 0, m.markErr
	}
	m.markedID = id
	return m.affected, nil
}
