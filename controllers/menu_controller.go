package controllers

import (
	"net/http"
	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MenuController handles catalog routes.
type MenuController struct {
	menuService services.MenuService
}

// NewMenuController creates a MenuController.
func NewMenuController(svc services.MenuService) *MenuController {
	return &MenuController{menuService: svc}
}

// ListBySlug handles GET /api/menu/:slug
func (mc *MenuController) ListBySlug(ctx *gin.Context) {
	items, svcErr := mc.menuService.ListBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Create handles POST /api/menu
func (mc *MenuController) Create(ctx *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	item, svcErr := mc.menuService.Create(ctx.Request.Context(), middleware.RestaurantID(ctx), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"item": item})
}

// SetAvailability handles PATCH /api/menu/:id/availability
func (mc *MenuController) SetAvailability(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	item, svcErr := mc.menuService.SetAvailability(ctx.Request.Context(), id, middleware.RestaurantID(ctx), *req.Available)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete handles DELETE /api/menu/:id
func (mc *MenuController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	if svcErr := mc.menuService.Delete(ctx.Request.Context(), id, middleware.RestaurantID(ctx)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
