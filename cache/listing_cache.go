package cache

import (
	"context"
	"encoding/json"
	"restaurant-platform/models"
	"time"

	"github.com/redis/go-redis/v9"
)

const listingKey = "restaurants:active"

// ListingCache keeps the public restaurant listing in Redis. A nil client
// disables caching; every method degrades to a miss.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a ListingCache with the given TTL.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

// Get returns the cached listing and whether it was present.
func (c *ListingCache) Get(ctx context.Context) ([]models.RestaurantPublic, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, listingKey).Result()
	if err != nil {
		return nil, false
	}
	var list []models.RestaurantPublic
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, false
	}
	return list, true
}

// Set stores the listing. Failures are ignored; the store stays the source
// of truth.
func (c *ListingCache) Set(ctx context.Context, list []models.RestaurantPublic) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	c.client.Set(ctx, listingKey, data, c.ttl)
}

// Invalidate drops the cached listing after a tenant is added or removed.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, listingKey)
}
