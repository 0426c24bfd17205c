package models

import "encoding/json"

// FeatureVector клинические признаки одного пациента.
// Категориальные признаки приходят уже закодированными числами
// (пол: 1/2, курение: 0/1), как их готовит слой ввода.
type FeatureVector map[string]float64

// UnmarshalJSON отбрасывает явные null-значения: null и отсутствующий
// ключ эквивалентны. Подменять null нулём нельзя — признак без
// значения должен дать ошибку неполного входа, а не выдуманное число.
func (fv *FeatureVector) UnmarshalJSON(data []byte) error {
	raw := make(map[string]*float64)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FeatureVector, len(raw))
	for name, v := range raw {
		if v == nil {
			continue
		}
		out[name] = *v
	}
	*fv = out
	return nil
}

// FeatureRange диапазон значений признака в обучающей выборке
type FeatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FeatureBounds границы обучающего распределения по признакам.
// Используются только для проверки правдоподобия входа (OOD),
// никогда — для обрезки или отклонения значений.
type FeatureBounds map[string]FeatureRange

// Thresholds клинические пороги стратификации для семейства моделей.
// Поля-указатели: отсутствующий в конфиге ключ — это не ноль,
// а сигнал использовать документированное значение по умолчанию.
type Thresholds struct {
	LowRisk      *float64 `json:"low_risk,omitempty"`
	HighRisk     *float64 `json:"high_risk,omitempty"`
	MaxDisplayRR *float64 `json:"max_display_rr,omitempty"`
}

// RiskTier качественная категория риска
type RiskTier string

const (
	RiskLow      RiskTier = "Low Risk"
	RiskModerate RiskTier = "Moderate Risk"
	RiskHigh     RiskTier = "High Risk"
)
