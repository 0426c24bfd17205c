package services

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/assets"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/inference"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/pkg/utils"
)

// Горизонты оценки по умолчанию: весь период наблюдения 1..7 лет
var defaultEvalTimes = []float64{1, 2, 3, 4, 5, 6, 7}

// PredictService отвечает за полный цикл предсказания: проверку
// правдоподобия входа, ансамблевый инференс, стратификацию риска,
// расчёт рисков по горизонтам и журналирование результата.
type PredictService struct {
	bundle     *assets.ModelAssetBundle
	thresholds models.Thresholds
	bounds     models.FeatureBounds
	db         *gorm.DB // nil — сервис работает без персистентности
}

// NewPredictService создает новый сервис предсказаний
func NewPredictService(bundle *assets.ModelAssetBundle, thresholds models.Thresholds, bounds models.FeatureBounds, db *gorm.DB) *PredictService {
	return &PredictService{
		bundle:     bundle,
		thresholds: thresholds,
		bounds:     bounds,
		db:         db,
	}
}

// Method возвращает семейство моделей, которое обслуживает сервис
func (ps *PredictService) Method() string {
	return ps.bundle.Method
}

// FoldCount возвращает число фолдов в загруженном ансамбле
func (ps *PredictService) FoldCount() int {
	return len(ps.bundle.Folds)
}

// Predict обрабатывает запрос на предсказание
func (ps *PredictService) Predict(req *models.PredictRequest) (*models.PredictResponse, error) {
	// Проверка правдоподобия: только предупреждения, числа не меняет
	warnings := inference.CheckPlausibility(req.Features, ps.bounds)
	if len(warnings) > 0 {
		slog.Warn("Input features outside the training distribution",
			"card_id", req.CardID, "features", warnings)
	}

	curve, relativeRisk, tier, err := inference.Infer(req.Features, ps.bundle, ps.thresholds)
	if err != nil {
		return nil, err
	}

	// Кривая уходит наружу с гарантированной точкой отсчёта (0, 1.0)
	curve = curve.EnsureOrigin()

	evalTimes := req.EvalTimes
	if len(evalTimes) == 0 {
		evalTimes = defaultEvalTimes
	}
	horizons := buildHorizons(curve, evalTimes)

	response := &models.PredictResponse{
		ID:            uuid.New(),
		CardID:        req.CardID,
		Warnings:      warnings,
		RelativeRisk:  utils.SafeFloat(relativeRisk),
		RiskTier:      tier,
		Thresholds:    inference.ResolveThresholds(ps.thresholds),
		SurvivalCurve: curve,
		Horizons:      horizons,
	}

	ps.saveRecord(req, response)
	return response, nil
}

// GetPrediction возвращает сохранённую запись предсказания
func (ps *PredictService) GetPrediction(id uuid.UUID) (*models.PredictionRecord, error) {
	if ps.db == nil {
		return nil, gorm.ErrRecordNotFound
	}
	var record models.PredictionRecord
	if err := ps.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListPredictions возвращает последние записи, опционально по карте пациента
func (ps *PredictService) ListPredictions(cardID string, limit int) ([]models.PredictionRecord, error) {
	if ps.db == nil {
		return nil, fmt.Errorf("persistence is disabled")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := ps.db.Order("created_at DESC").Limit(limit)
	if cardID != "" {
		query = query.Where("card_id = ?", cardID)
	}
	var records []models.PredictionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// buildHorizons считает риск на каждом запрошенном горизонте через
// LOCF-запрос к кривой; за пределами последнего наблюдения кривая
// считается плоской, поэтому все запрошенные годы получают ответ
func buildHorizons(curve survival.Curve, evalTimes []float64) []models.HorizonRisk {
	times := make([]float64, len(evalTimes))
	copy(times, evalTimes)
	sort.Float64s(times)

	horizons := make([]models.HorizonRisk, 0, len(times))
	for _, t := range times {
		surv, risk := curve.ProbabilityAt(t)
		horizons = append(horizons, models.HorizonRisk{
			Time:                t,
			Label:               horizonLabel(t),
			SurvivalProbability: surv,
			RiskProbability:     risk,
		})
	}
	return horizons
}

// horizonLabel классифицирует горизонт прогноза
func horizonLabel(t float64) string {
	switch {
	case t <= 2:
		return "Short-term"
	case t <= 5:
		return "Mid-term"
	default:
		return "Long-term"
	}
}

// saveRecord журналирует предсказание; сбой журнала не должен
// ронять сам результат — пишем в лог и продолжаем
func (ps *PredictService) saveRecord(req *models.PredictRequest, resp *models.PredictResponse) {
	if ps.db == nil {
		return
	}
	record := models.PredictionRecord{
		ID:           resp.ID,
		CardID:       req.CardID,
		Features:     req.Features,
		Curve:        resp.SurvivalCurve,
		Horizons:     resp.Horizons,
		Warnings:     resp.Warnings,
		RelativeRisk: resp.RelativeRisk,
		RiskTier:     resp.RiskTier,
		Method:       ps.bundle.Method,
	}
	if err := ps.db.Create(&record).Error; err != nil {
		slog.Error("Failed to persist prediction record", "id", resp.ID, "error", err)
	}
}
