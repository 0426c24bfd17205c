package models

import (
	"github.com/google/uuid"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
)

// PredictRequest структура запроса на предсказание
type PredictRequest struct {
	// Необязательный идентификатор пациента / номер медкарты
	CardID string `json:"card_id" example:"P2025122901"`
	// Клинические признаки; состав определяется схемой модели
	Features FeatureVector `json:"features" binding:"required"`
	// Горизонты оценки в годах; по умолчанию 1..7
	EvalTimes []float64 `json:"eval_times" example:"1,3,5,7"`
}

// HorizonRisk риск на конкретном горизонте прогноза
type HorizonRisk struct {
	Time                float64 `json:"time" example:"3"`                       // горизонт в годах
	Label               string  `json:"label" example:"Mid-term"`               // Short-term / Mid-term / Long-term
	SurvivalProbability float64 `json:"survival_probability" example:"0.91"`    // S(t)
	RiskProbability     float64 `json:"risk_probability" example:"0.09"`        // 1 - S(t)
}

// AppliedThresholds фактически применённые пороги стратификации
// (после подстановки значений по умолчанию)
type AppliedThresholds struct {
	LowRisk      float64 `json:"low_risk" example:"0.6"`
	HighRisk     float64 `json:"high_risk" example:"1.6"`
	MaxDisplayRR float64 `json:"max_display_rr" example:"3.0"`
}

// PredictResponse структура ответа с результатом предсказания
type PredictResponse struct {
	ID            uuid.UUID         `json:"id"`
	CardID        string            `json:"card_id,omitempty"`
	Warnings      []string          `json:"warnings"` // признаки вне обучающего диапазона
	RelativeRisk  float64           `json:"relative_risk" example:"1.24"`
	RiskTier      RiskTier          `json:"risk_tier" example:"Moderate Risk"`
	Thresholds    AppliedThresholds `json:"thresholds"`
	SurvivalCurve survival.Curve    `json:"survival_curve"`
	Horizons      []HorizonRisk     `json:"horizons"`
}
