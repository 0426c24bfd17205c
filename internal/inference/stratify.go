package inference

import (
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
)

// Документированные пороги по умолчанию: применяются, когда ключ
// отсутствует в конфигурации. Пробел конфигурации восстановим и
// никогда не фатален.
const (
	DefaultLowRisk      = 0.6
	DefaultHighRisk     = 1.6
	DefaultMaxDisplayRR = 3.0
)

// ResolveThresholds подставляет значения по умолчанию вместо
// отсутствующих ключей конфигурации
func ResolveThresholds(t models.Thresholds) models.AppliedThresholds {
	applied := models.AppliedThresholds{
		LowRisk:      DefaultLowRisk,
		HighRisk:     DefaultHighRisk,
		MaxDisplayRR: DefaultMaxDisplayRR,
	}
	if t.LowRisk != nil {
		applied.LowRisk = *t.LowRisk
	}
	if t.HighRisk != nil {
		applied.HighRisk = *t.HighRisk
	}
	if t.MaxDisplayRR != nil {
		applied.MaxDisplayRR = *t.MaxDisplayRR
	}
	return applied
}

// Stratify переводит консенсусный относительный риск в качественную
// категорию. Сравнения строгие: значение, равное порогу, попадает в
// умеренный риск — так зафиксирован контракт, менять на нестрогие
// сравнения нельзя.
func Stratify(rr float64, thresholds models.Thresholds) models.RiskTier {
	applied := ResolveThresholds(thresholds)
	switch {
	case rr < applied.LowRisk:
		return models.RiskLow
	case rr > applied.HighRisk:
		return models.RiskHigh
	default:
		return models.RiskModerate
	}
}
