package middleware

import (
	"net/http"
	"restaurant-platform/services"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRestaurantID = "restaurant_id"
	ctxSlug         = "restaurant_slug"
)

// Auth validates the Bearer token and stores the tenant identity on the
// request context.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		idStr, _ := claims["id"].(string)
		id, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		slug, _ := claims["slug"].(string)

		c.Set(ctxRestaurantID, id)
		c.Set(ctxSlug, slug)
		c.Next()
	}
}

// RestaurantID returns the authenticated tenant id set by Auth.
func RestaurantID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ctxRestaurantID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// RestaurantSlug returns the authenticated tenant slug set by Auth.
func RestaurantSlug(c *gin.Context) string {
	if v, ok := c.Get(ctxSlug); ok {
		if slug, ok := v.(string); ok {
			return slug
		}
	}
	return ""
}
