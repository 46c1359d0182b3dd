package controllers

import (
	"net/http"
	"restaurant-platform/middleware"
	"restaurant-platform/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NotificationController exposes the tenant inbox.
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a NotificationController.
func NewNotificationController(svc services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: svc}
}

// List handles GET /api/notifications
func (nc *NotificationController) List(ctx *gin.Context) {
	list, svcErr := nc.notificationService.ListForRestaurant(ctx.Request.Context(), middleware.RestaurantID(ctx))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// MarkRead handles PATCH /api/notifications/:id/read
func (nc *NotificationController) MarkRead(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if svcErr := nc.notificationService.MarkRead(ctx.Request.Context(), id, middleware.RestaurantID(ctx)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
