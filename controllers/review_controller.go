package controllers

import (
	"net/http"
	"restaurant-platform/models"
	"restaurant-platform/services"

	"github.com/gin-gonic/gin"
)

// ReviewController handles customer reviews.
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a ReviewController.
func NewReviewController(svc services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: svc}
}

// Create handles POST /api/restaurants/:slug/reviews
func (rc *ReviewController) Create(ctx *gin.Context) {
	var req models.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	review, svcErr := rc.reviewService.Create(ctx.Request.Context(), ctx.Param("slug"), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"review": review})
}

// ListBySlug handles GET /api/restaurants/:slug/reviews
func (rc *ReviewController) ListBySlug(ctx *gin.Context) {
	reviews, svcErr := rc.reviewService.ListBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
