package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
)

func testBounds() models.FeatureBounds {
	return models.FeatureBounds{
		"age": {Min: 18, Max: 100},
		"bmi": {Min: 12, Max: 50},
	}
}

func TestCheckPlausibilityOutOfRange(t *testing.T) {
	warnings := CheckPlausibility(models.FeatureVector{
		"age": 130,
		"bmi": 24.5,
	}, testBounds())

	assert.Equal(t, []string{"age (130)"}, warnings)
}

func TestCheckPlausibilityInRange(t *testing.T) {
	warnings := CheckPlausibility(models.FeatureVector{
		"age": 64,
		"bmi": 21.3,
	}, testBounds())

	assert.Empty(t, warnings)
}

func TestCheckPlausibilityBoundaryValuesAccepted(t *testing.T) {
	// Границы включительные: значение на краю диапазона корректно
	warnings := CheckPlausibility(models.FeatureVector{
		"age": 100,
		"bmi": 12,
	}, testBounds())

	assert.Empty(t, warnings)
}

func TestCheckPlausibilityNilBounds(t *testing.T) {
	// Файл границ недоступен — проверка молча пропускается
	warnings := CheckPlausibility(models.FeatureVector{"age": 500}, nil)

	assert.Empty(t, warnings)
}

func TestCheckPlausibilityUnknownFeatureSkipped(t *testing.T) {
	warnings := CheckPlausibility(models.FeatureVector{
		"grip_strength": 9000,
	}, testBounds())

	assert.Empty(t, warnings)
}

func TestCheckPlausibilityStableOrder(t *testing.T) {
	bounds := models.FeatureBounds{
		"age":                {Min: 18, Max: 100},
		"bmi":                {Min: 12, Max: 50},
		"calf_circumference": {Min: 20, Max: 60},
	}
	features := models.FeatureVector{
		"calf_circumference": 70,
		"age":                130,
		"bmi":                55,
	}

	for i := 0; i < 20; i++ {
		warnings := CheckPlausibility(features, bounds)
		assert.Equal(t, []string{"age (130)", "bmi (55)", "calf_circumference (70)"}, warnings)
	}
}
