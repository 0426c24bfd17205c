package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/assets"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/services"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
)

type passthroughPreprocessor struct {
	columns []string
}

func (p *passthroughPreprocessor) Transform(row models.FeatureVector) ([]float64, []string, error) {
	values := make([]float64, len(p.columns))
	for i, col := range p.columns {
		values[i] = row[col]
	}
	return values, p.columns, nil
}

type constantModel struct {
	curve  survival.Curve
	hazard float64
}

func (m *constantModel) PredictSurvivalFunction(x []float64) (survival.Curve, error) {
	out := make(survival.Curve, len(m.curve))
	copy(out, m.curve)
	return out, nil
}

func (m *constantModel) PredictPartialHazard(x []float64) (float64, error) {
	return m.hazard, nil
}

func newTestRouter(t *testing.T, authSecret string) *gin.Engine {
	t.Helper()
	schema := []string{"age", "bmi"}
	bundle := &assets.ModelAssetBundle{
		Method:   "Cox",
		Features: schema,
		Folds: []assets.FoldAsset{
			{
				Preprocessor: &passthroughPreprocessor{columns: schema},
				Model: &constantModel{
					curve:  survival.Curve{{Time: 1, Probability: 0.9}, {Time: 2, Probability: 0.8}},
					hazard: 1.2,
				},
			},
		},
	}
	svc := services.NewPredictService(bundle, models.Thresholds{}, nil, nil)
	return NewPredictHandler(svc).SetupRoutes(authSecret)
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPredictEndpoint(t *testing.T) {
	router := newTestRouter(t, "")
	body := []byte(`{"card_id": "card-1", "features": {"age": 70, "bmi": 22}}`)

	w := doRequest(router, http.MethodPost, "/api/v1/predict", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PredictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "card-1", resp.CardID)
	assert.InDelta(t, 1.2, resp.RelativeRisk, 1e-12)
	assert.Equal(t, models.RiskModerate, resp.RiskTier)
	require.NotEmpty(t, resp.SurvivalCurve)
	assert.Equal(t, 0.0, resp.SurvivalCurve[0].Time)
	assert.Equal(t, 1.0, resp.SurvivalCurve[0].Probability)
}

func TestPredictEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(t, "")

	w := doRequest(router, http.MethodPost, "/api/v1/predict", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictEndpointMissingFeatures(t *testing.T) {
	router := newTestRouter(t, "")
	body := []byte(`{"card_id": "card-1", "features": {"age": 70}}`)

	w := doRequest(router, http.MethodPost, "/api/v1/predict", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "incomplete input", resp.Error)
	assert.Contains(t, resp.Details, "bmi")
}

func TestPredictEndpointNullFeatureValue(t *testing.T) {
	router := newTestRouter(t, "")
	// Явный null эквивалентен отсутствию признака: подставлять 0.0
	// вместо значения нельзя
	body := []byte(`{"card_id": "card-1", "features": {"age": null, "bmi": 22}}`)

	w := doRequest(router, http.MethodPost, "/api/v1/predict", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "incomplete input", resp.Error)
	assert.Contains(t, resp.Details, "age")
}

func TestGetPredictionInvalidID(t *testing.T) {
	router := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/v1/predictions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPredictionNotFound(t *testing.T) {
	router := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/v1/predictions/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPredictionsWithoutStorage(t *testing.T) {
	router := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/v1/predictions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "Cox", payload["method"])
	assert.Equal(t, float64(1), payload["folds"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, "test-secret")
	body := []byte(`{"features": {"age": 70, "bmi": 22}}`)

	w := doRequest(router, http.MethodPost, "/api/v1/predict", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Health остаётся открытым
	w = doRequest(router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
