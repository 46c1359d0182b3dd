package controllers

import (
	"net/http"
	"restaurant-platform/models"
	"restaurant-platform/services"

	"github.com/gin-gonic/gin"
)

// AuthController handles tenant login.
type AuthController struct {
	restaurantService services.RestaurantService
}

// NewAuthController creates an AuthController.
func NewAuthController(svc services.RestaurantService) *AuthController {
	return &AuthController{restaurantService: svc}
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	token, restaurant, svcErr := ac.restaurantService.Login(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"restaurant": models.RestaurantPublic{
			ID:   restaurant.ID,
			Slug: restaurant.Slug,
			Name: restaurant.Name,
			Logo: restaurant.Logo,
		},
	})
}
