package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
)

// PredictionRecord журнальная запись одного предсказания
type PredictionRecord struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CardID string    `json:"card_id" gorm:"type:varchar(100);index"`

	// Вход и результат как JSONB: состав признаков зависит от семейства моделей
	Features FeatureVector  `json:"features" gorm:"serializer:json;type:jsonb"`
	Curve    survival.Curve `json:"survival_curve" gorm:"serializer:json;type:jsonb"`
	Horizons []HorizonRisk  `json:"horizons" gorm:"serializer:json;type:jsonb"`
	Warnings []string       `json:"warnings" gorm:"serializer:json;type:jsonb"`

	RelativeRisk float64  `json:"relative_risk" gorm:"not null"`
	RiskTier     RiskTier `json:"risk_tier" gorm:"type:varchar(32);not null;index"`
	Method       string   `json:"method" gorm:"type:varchar(64);not null"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
}

func (PredictionRecord) TableName() string {
	return "sarc_predictions"
}
