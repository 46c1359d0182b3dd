package repository

import (
	"context"
	"restaurant-platform/models"

	"gorm.io/gorm"
)

// MenuRepository defines data-access operations for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	FindByID(ctx context.Context, id int64) (*models.MenuItem, error)
	ListBySlug(ctx context.Context, slug string) ([]models.MenuItem, error)
	UpdateAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
	DistinctCategories(ctx context.Context) ([]string, error)
}

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new GormMenuRepository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormMenuRepository) FindByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormMenuRepository) ListBySlug(ctx context.Context, slug string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Joins("JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
		Where("restaurants.slug = ?", slug).
		Order("menu_items.category, menu_items.name").
		Find(&items).Error
	return items, err
}

// UpdateAvailability touches only the available column; every other field
// of the row stays as is.
func (r *GormMenuRepository) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("available", available).Error
}

func (r *GormMenuRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id).Error
}

func (r *GormMenuRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}
