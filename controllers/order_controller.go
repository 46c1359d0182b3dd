package controllers

import (
	"net/http"
	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OrderController handles customer intake and the tenant order board.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates an OrderController.
func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// Create handles POST /api/orders
func (oc *OrderController) Create(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	confirmation, svcErr := oc.orderService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"order": confirmation})
}

// ListBySlug handles GET /api/orders/:slug
func (oc *OrderController) ListBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug != middleware.RestaurantSlug(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "cannot view another restaurant's orders"})
		return
	}

	orders, svcErr := oc.orderService.ListBySlug(ctx.Request.Context(), slug)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/orders/:id/status
func (oc *OrderController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.UpdateStatus(ctx.Request.Context(), id, middleware.RestaurantID(ctx), req.Status)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}
