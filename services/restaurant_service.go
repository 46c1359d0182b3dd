package services

import (
	"context"
	"errors"
	"net/http"
	"restaurant-platform/cache"
	"restaurant-platform/models"
	"restaurant-platform/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RestaurantService covers tenant lifecycle and public catalog reads.
type RestaurantService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Restaurant, *ServiceError)
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.Restaurant, *ServiceError)
	ListActive(ctx context.Context) ([]models.RestaurantPublic, *ServiceError)
	GetBySlug(ctx context.Context, slug string) (*models.Restaurant, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
	Stats(ctx context.Context) (*models.Stats, *ServiceError)
}

type restaurantService struct {
	repo       repository.RestaurantRepository
	reviewRepo repository.ReviewRepository
	menuRepo   repository.MenuRepository
	tokens     *TokenService
	listing    *cache.ListingCache
	logger     *zap.Logger
}

// NewRestaurantService creates a RestaurantService.
func NewRestaurantService(
	repo repository.RestaurantRepository,
	reviewRepo repository.ReviewRepository,
	menuRepo repository.MenuRepository,
	tokens *TokenService,
	listing *cache.ListingCache,
	logger *zap.Logger,
) RestaurantService {
	return &restaurantService{
		repo:       repo,
		reviewRepo: reviewRepo,
		menuRepo:   menuRepo,
		tokens:     tokens,
		listing:    listing,
		logger:     logger,
	}
}

func (s *restaurantService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Restaurant, *ServiceError) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, "failed to hash password")
	}

	restaurant := &models.Restaurant{
		ID:               uuid.New(),
		Slug:             req.Slug,
		Name:             req.Name,
		Username:         req.Username,
		PasswordHash:     string(hash),
		Phone:            req.Phone,
		Address:          req.Address,
		TelegramBotToken: req.TelegramBotToken,
		TelegramChatID:   req.TelegramChatID,
		IsActive:         true,
	}

	if err := s.repo.Register(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrDuplicateTenant) {
			return nil, newError(http.StatusBadRequest, "restaurant or username already exists")
		}
		s.logger.Error("tenant registration failed", zap.String("slug", req.Slug), zap.Error(err))
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	s.listing.Invalidate(ctx)
	s.logger.Info("tenant registered", zap.String("slug", restaurant.Slug))
	return restaurant, nil
}

func (s *restaurantService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.Restaurant, *ServiceError) {
	restaurant, err := s.repo.FindByUsernameAndSlug(ctx, req.Username, req.Slug)
	if err != nil {
		return "", nil, newError(http.StatusUnauthorized, "invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(restaurant.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, newError(http.StatusUnauthorized, "invalid username or password")
	}

	token, err := s.tokens.Generate(restaurant)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return "", nil, newError(http.StatusInternalServerError, "failed to issue token")
	}
	return token, restaurant, nil
}

func (s *restaurantService) ListActive(ctx context.Context) ([]models.RestaurantPublic, *ServiceError) {
	if list, ok := s.listing.Get(ctx); ok {
		return list, nil
	}

	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}

	s.listing.Set(ctx, list)
	return list, nil
}

func (s *restaurantService) GetBySlug(ctx context.Context, slug string) (*models.Restaurant, *ServiceError) {
	restaurant, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(http.StatusNotFound, "restaurant not found")
		}
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	// deactivated tenants read the same as unknown slugs
	if !restaurant.IsActive {
		return nil, newError(http.StatusNotFound, "restaurant not found")
	}
	return restaurant, nil
}

func (s *restaurantService) Delete(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("tenant delete failed", zap.String("id", id.String()), zap.Error(err))
		return newError(http.StatusInternalServerError, err.Error())
	}
	s.listing.Invalidate(ctx)
	return nil
}

func (s *restaurantService) Stats(ctx context.Context) (*models.Stats, *ServiceError) {
	restaurants, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	reviews, err := s.reviewRepo.Count(ctx)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	categories, err := s.menuRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error())
	}
	return &models.Stats{
		TotalRestaurants: restaurants,
		TotalReviews:     reviews,
		Categories:       categories,
	}, nil
}
