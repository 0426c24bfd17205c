package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/inference"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/services"
)

// PredictHandler обрабатывает HTTP запросы предсказаний
type PredictHandler struct {
	predictService *services.PredictService
}

// NewPredictHandler создает новый обработчик предсказаний
func NewPredictHandler(predictService *services.PredictService) *PredictHandler {
	return &PredictHandler{predictService: predictService}
}

// Predict выполняет ансамблевое предсказание риска саркопении
// @Summary Индивидуальный прогноз риска саркопении
// @Description Прогоняет признаки пациента через ансамбль Cox-моделей и возвращает консенсусную функцию дожития, относительный риск, категорию риска и риски по горизонтам
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Признаки пациента и горизонты оценки"
// @Success 200 {object} models.PredictResponse "Результат предсказания"
// @Failure 400 {object} models.ErrorResponse "Неверный или неполный запрос"
// @Failure 500 {object} models.ErrorResponse "Дефект артефактов модели"
// @Router /predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	response, err := h.predictService.Predict(&req)
	if err != nil {
		h.writePredictError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// writePredictError классифицирует ошибку конвейера: неполный вход —
// вина вызывающей стороны (400), несоответствие схемы или сеток
// времени — дефект артефактов (500), повторять запрос бессмысленно
func (h *PredictHandler) writePredictError(c *gin.Context, err error) {
	var incomplete *inference.IncompleteInputError
	if errors.As(err, &incomplete) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "incomplete input",
			Details: incomplete.Error(),
		})
		return
	}

	var mismatch *inference.SchemaMismatchError
	if errors.As(err, &mismatch) || errors.Is(err, inference.ErrCurveGridMismatch) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "model asset defect",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "prediction error",
		Details: err.Error(),
	})
}

// GetPrediction возвращает сохранённое предсказание по идентификатору
// @Summary Получение записи предсказания
// @Description Возвращает журнальную запись предсказания по её UUID
// @Tags predictions
// @Produce json
// @Param id path string true "UUID предсказания"
// @Success 200 {object} models.PredictionRecord "Запись предсказания"
// @Failure 400 {object} models.ErrorResponse "Неверный идентификатор"
// @Failure 404 {object} models.ErrorResponse "Запись не найдена"
// @Router /predictions/{id} [get]
func (h *PredictHandler) GetPrediction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid prediction id",
			Details: err.Error(),
		})
		return
	}

	record, err := h.predictService.GetPrediction(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "prediction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "storage error",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListPredictions возвращает последние предсказания
// @Summary История предсказаний
// @Description Возвращает последние журнальные записи, опционально отфильтрованные по карте пациента
// @Tags predictions
// @Produce json
// @Param card_id query string false "Идентификатор карты пациента"
// @Param limit query int false "Максимум записей (по умолчанию 20)"
// @Success 200 {array} models.PredictionRecord "Записи предсказаний"
// @Failure 503 {object} models.ErrorResponse "Персистентность отключена"
// @Router /predictions [get]
func (h *PredictHandler) ListPredictions(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			limit = n
		}
	}

	records, err := h.predictService.ListPredictions(c.Query("card_id"), limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "prediction history unavailable",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает статус сервиса, семейство моделей и число фолдов ансамбля
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /health [get]
func (h *PredictHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"method":    h.predictService.Method(),
		"folds":     h.predictService.FoldCount(),
		"timestamp": time.Now().UTC(),
	})
}
