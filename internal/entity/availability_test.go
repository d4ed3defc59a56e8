package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityCheckResultDefaultsToOk(t *testing.T) {
	var result AvailabilityCheckResult

	assert.Equal(t, AvailabilityOk, result.Status)
	assert.False(t, result.HasNotFoundProducts())
	assert.False(t, result.HasUnavailableProducts())
}

func TestAvailabilityNotFoundOutranksInsufficient(t *testing.T) {
	var result AvailabilityCheckResult

	result.AddNotAvailable("Widget")
	assert.Equal(t, AvailabilityInsufficientStock, result.Status)

	result.AddNotFound(99)
	assert.Equal(t, AvailabilityProductsNotFound, result.Status)

	result.AddNotAvailable("Gadget")
	assert.Equal(t, AvailabilityProductsNotFound, result.Status,
		"a later insufficiency must not downgrade a missing product")

	assert.Equal(t, []int{99}, result.ProductsNotFound)
	assert.Equal(t, []string{"Widget", "Gadget"}, result.ProductsNotAvailable)
}
