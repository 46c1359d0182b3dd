package services_test

import (
	"restaurant-platform/models"
	"restaurant-platform/services"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToken_RoundTrip(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	restaurant := &models.Restaurant{ID: uuid.New(), Username: "mario", Slug: "pizza-place"}

	token, err := tokens.Generate(restaurant)
	assert.NoError(t, err)

	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, restaurant.ID.String(), claims["id"])
	assert.Equal(t, "mario", claims["username"])
	assert.Equal(t, "pizza-place", claims["slug"])
}

func TestToken_WrongSecret(t *testing.T) {
	issuer := services.NewTokenService("secret-a", time.Hour)
	verifier := services.NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate(&models.Restaurant{ID: uuid.New()})
	assert.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	tokens := services.NewTokenService("test-secret", -time.Minute)

	token, err := tokens.Generate(&models.Restaurant{ID: uuid.New()})
	assert.NoError(t, err)

	_, err = tokens.Validate(token)
	assert.Error(t, err)
}
