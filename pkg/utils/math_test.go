package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 1.5, SafeFloat(1.5))
	assert.Equal(t, 0.0, SafeFloat(math.NaN()))
	assert.Equal(t, 0.0, SafeFloat(math.Inf(1)))
	assert.Equal(t, 0.0, SafeFloat(math.Inf(-1)))
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 0.85, Mean([]float64{0.9, 0.8}), 1e-12)
	assert.Equal(t, 3.0, Mean([]float64{3}))
	assert.True(t, math.IsNaN(Mean(nil)))
}
