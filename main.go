package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-platform/cache"
	"restaurant-platform/controllers"
	"restaurant-platform/database"
	"restaurant-platform/logger"
	"restaurant-platform/providers"
	"restaurant-platform/repository"
	"restaurant-platform/routes"
	servicepkg "restaurant-platform/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	db, err := database.Connect(zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	redisClient := database.NewRedisClient(cfg.RedisURL, zlog)
	listingCache := cache.NewListingCache(redisClient, cfg.CacheTTL)

	// Repositories and DI chain
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	tokens := servicepkg.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	notifier := providers.NewTelegramNotifier()

	restaurantService := servicepkg.NewRestaurantService(restaurantRepo, reviewRepo, menuRepo, tokens, listingCache, zlog)
	menuService := servicepkg.NewMenuService(menuRepo)
	orderService := servicepkg.NewOrderService(restaurantRepo, orderRepo, notifier, zlog)
	reviewService := servicepkg.NewReviewService(reviewRepo, restaurantRepo, zlog)
	notificationService := servicepkg.NewNotificationService(notificationRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zlog))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "database": "disconnected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
	})

	routes.Register(r, routes.Controllers{
		Auth:         controllers.NewAuthController(restaurantService),
		Restaurant:   controllers.NewRestaurantController(restaurantService),
		Menu:         controllers.NewMenuController(menuService),
		Order:        controllers.NewOrderController(orderService),
		Review:       controllers.NewReviewController(reviewService),
		Notification: controllers.NewNotificationController(notificationService),
	}, tokens)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	zlog.Info("Restaurant platform started", zap.String("port", cfg.Port))
	<-quit
	zlog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited cleanly")
}
