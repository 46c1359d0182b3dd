package routes

import (
	"restaurant-platform/controllers"
	"restaurant-platform/middleware"
	"restaurant-platform/services"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Restaurant   *controllers.RestaurantController
	Menu         *controllers.MenuController
	Order        *controllers.OrderController
	Review       *controllers.ReviewController
	Notification *controllers.NotificationController
}

// Register sets up all API routes.
func Register(r *gin.Engine, c Controllers, tokens *services.TokenService) {
	api := r.Group("/api")

	auth := api.Group("/auth", middleware.RateLimit())
	auth.POST("/login", c.Auth.Login)

	restaurants := api.Group("/restaurants")
	restaurants.POST("/register", middleware.RateLimit(), c.Restaurant.Register)
	restaurants.GET("", c.Restaurant.List)
	restaurants.GET("/:slug", c.Restaurant.GetBySlug)
	restaurants.DELETE("/:slug", middleware.Auth(tokens), c.Restaurant.Delete)
	restaurants.GET("/:slug/reviews", c.Review.ListBySlug)
	restaurants.POST("/:slug/reviews", c.Review.Create)

	api.GET("/menu/:slug", c.Menu.ListBySlug)
	menu := api.Group("/menu", middleware.Auth(tokens))
	menu.POST("", c.Menu.Create)
	menu.PATCH("/:id/availability", c.Menu.SetAvailability)
	menu.DELETE("/:id", c.Menu.Delete)

	api.POST("/orders", c.Order.Create)
	orders := api.Group("/orders", middleware.Auth(tokens))
	orders.GET("/:slug", c.Order.ListBySlug)
	orders.PATCH("/:id/status", c.Order.UpdateStatus)

	notifications := api.Group("/notifications", middleware.Auth(tokens))
	notifications.GET("", c.Notification.List)
	notifications.PATCH("/:id/read", c.Notification.MarkRead)

	api.GET("/stats", c.Restaurant.Stats)
}
