package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestStratifyBoundaries(t *testing.T) {
	thresholds := models.Thresholds{
		LowRisk:  floatPtr(0.6),
		HighRisk: floatPtr(1.6),
	}

	tests := []struct {
		name string
		rr   float64
		want models.RiskTier
	}{
		{"ниже нижнего порога", 0.59, models.RiskLow},
		{"ровно нижний порог — умеренный", 0.6, models.RiskModerate},
		{"между порогами", 1.0, models.RiskModerate},
		{"ровно верхний порог — умеренный", 1.6, models.RiskModerate},
		{"выше верхнего порога", 1.61, models.RiskHigh},
		{"нулевой риск", 0, models.RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stratify(tt.rr, thresholds))
		})
	}
}

func TestStratifyFallsBackToDefaults(t *testing.T) {
	// Пустая конфигурация — документированные значения по умолчанию
	empty := models.Thresholds{}

	assert.Equal(t, models.RiskLow, Stratify(0.59, empty))
	assert.Equal(t, models.RiskModerate, Stratify(0.6, empty))
	assert.Equal(t, models.RiskModerate, Stratify(1.6, empty))
	assert.Equal(t, models.RiskHigh, Stratify(1.61, empty))
}

func TestStratifyPartialConfig(t *testing.T) {
	// Задан только нижний порог: верхний берётся по умолчанию
	partial := models.Thresholds{LowRisk: floatPtr(0.8)}

	assert.Equal(t, models.RiskLow, Stratify(0.79, partial))
	assert.Equal(t, models.RiskModerate, Stratify(0.8, partial))
	assert.Equal(t, models.RiskHigh, Stratify(1.7, partial))
}

func TestStratifyMonotonic(t *testing.T) {
	// С ростом RR категория никогда не понижается
	thresholds := models.Thresholds{}
	order := map[models.RiskTier]int{
		models.RiskLow:      0,
		models.RiskModerate: 1,
		models.RiskHigh:     2,
	}

	prev := models.RiskLow
	for rr := 0.0; rr <= 5.0; rr += 0.01 {
		tier := Stratify(rr, thresholds)
		assert.GreaterOrEqual(t, order[tier], order[prev], "rr=%f", rr)
		prev = tier
	}
}

func TestResolveThresholds(t *testing.T) {
	applied := ResolveThresholds(models.Thresholds{
		HighRisk: floatPtr(2.2),
	})

	assert.Equal(t, DefaultLowRisk, applied.LowRisk)
	assert.Equal(t, 2.2, applied.HighRisk)
	assert.Equal(t, DefaultMaxDisplayRR, applied.MaxDisplayRR)
}
