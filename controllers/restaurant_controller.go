package controllers

import (
	"net/http"
	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/services"

	"github.com/gin-gonic/gin"
)

// RestaurantController handles tenant lifecycle and public catalog routes.
type RestaurantController struct {
	restaurantService services.RestaurantService
}

// NewRestaurantController creates a RestaurantController.
func NewRestaurantController(svc services.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurantService: svc}
}

// Register handles POST /api/restaurants/register
func (rc *RestaurantController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	restaurant, svcErr := rc.restaurantService.Register(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"restaurant": models.RestaurantPublic{
		ID:   restaurant.ID,
		Slug: restaurant.Slug,
		Name: restaurant.Name,
		Logo: restaurant.Logo,
	}})
}

// List handles GET /api/restaurants
func (rc *RestaurantController) List(ctx *gin.Context) {
	list, svcErr := rc.restaurantService.ListActive(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetBySlug handles GET /api/restaurants/:slug
func (rc *RestaurantController) GetBySlug(ctx *gin.Context) {
	restaurant, svcErr := rc.restaurantService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, restaurant)
}

// Delete handles DELETE /api/restaurants/:slug
func (rc *RestaurantController) Delete(ctx *gin.Context) {
	if ctx.Param("slug") != middleware.RestaurantSlug(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "cannot delete another restaurant"})
		return
	}

	if svcErr := rc.restaurantService.Delete(ctx.Request.Context(), middleware.RestaurantID(ctx)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "restaurant deleted"})
}

// Stats handles GET /api/stats
func (rc *RestaurantController) Stats(ctx *gin.Context) {
	stats, svcErr := rc.restaurantService.Stats(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
