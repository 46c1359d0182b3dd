package repository

import (
	"context"
	"errors"
	"restaurant-platform/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateTenant is returned when a slug or username is already taken.
var ErrDuplicateTenant = errors.New("restaurant or username already exists")

// RestaurantRepository defines data-access operations for tenants.
type RestaurantRepository interface {
	Create(ctx context.Context, r *models.Restaurant) error
	Register(ctx context.Context, r *models.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	FindBySlug(ctx context.Context, slug string) (*models.Restaurant, error)
	FindByUsernameAndSlug(ctx context.Context, username, slug string) (*models.Restaurant, error)
	ExistsBySlugOrUsername(ctx context.Context, slug, username string) (bool, error)
	ListActive(ctx context.Context) ([]models.RestaurantPublic, error)
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, count int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new GormRestaurantRepository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	return r.db.WithContext(ctx).Create(rest).Error
}

// Register re-checks slug/username uniqueness inside the same transaction
// as the insert, so concurrent registrations with identical slugs cannot
// both pass the check.
func (r *GormRestaurantRepository) Register(ctx context.Context, rest *models.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Restaurant{}).
			Where("slug = ? OR username = ?", rest.Slug, rest.Username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateTenant
		}
		return tx.Create(rest).Error
	})
}

func (r *GormRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).First(&rest, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *GormRestaurantRepository) FindBySlug(ctx context.Context, slug string) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *GormRestaurantRepository) FindByUsernameAndSlug(ctx context.Context, username, slug string) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.WithContext(ctx).
		Where("username = ? AND slug = ?", username, slug).
		First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *GormRestaurantRepository) ExistsBySlugOrUsername(ctx context.Context, slug, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Restaurant{}).
		Where("slug = ? OR username = ?", slug, username).
		Count(&count).Error
	return count > 0, err
}

func (r *GormRestaurantRepository) ListActive(ctx context.Context) ([]models.RestaurantPublic, error) {
	var list []models.RestaurantPublic
	err := r.db.WithContext(ctx).Model(&models.Restaurant{}).
		Select("id", "slug", "name", "logo").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *GormRestaurantRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, count int64) error {
	return r.db.WithContext(ctx).Model(&models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": count}).Error
}

// Delete removes the tenant and everything it owns. Reviews reference but
// are not owned by the tenant; they are removed here as well so no orphaned
// rows survive (asserted by tests).
func (r *GormRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Restaurant{}, "id = ?", id).Error
	})
}

func (r *GormRestaurantRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Restaurant{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
