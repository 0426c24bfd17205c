package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
)

const (
	featuresFile      = "final_model_features.txt"
	preprocessorsFile = "final_feature_preprocessors.json"
	modelsFile        = "final_models.json"
)

// scalerParams сериализованные параметры препроцессора одного фолда
type scalerParams struct {
	Columns []string           `json:"columns"`
	Mean    map[string]float64 `json:"mean"`
	Scale   map[string]float64 `json:"scale"`
}

// coxParams сериализованные параметры Cox-модели одного фолда
type coxParams struct {
	Coefficients     map[string]float64 `json:"coefficients"`
	BaselineSurvival survival.Curve     `json:"baseline_survival"`
}

// LoadModelAssets загружает артефакты семейства моделей из каталога
// baseDir/method: список признаков (tab-separated), препроцессоры и
// модели по фолдам. Отсутствие каталога или файлов — фатальная ошибка
// AssetsNotFoundError: без артефактов предсказания невозможны.
func LoadModelAssets(baseDir, method string) (*ModelAssetBundle, error) {
	basePath := filepath.Join(baseDir, method)
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		return nil, &AssetsNotFoundError{Path: basePath}
	}

	// Список признаков: одна строка, имена через табуляцию
	raw, err := os.ReadFile(filepath.Join(basePath, featuresFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &AssetsNotFoundError{Path: filepath.Join(basePath, featuresFile)}
		}
		return nil, fmt.Errorf("failed to read feature list: %w", err)
	}
	features := strings.Split(strings.TrimSpace(string(raw)), "\t")
	if len(features) == 0 || features[0] == "" {
		return nil, fmt.Errorf("feature list in %s is empty", featuresFile)
	}

	var preprocessors []scalerParams
	if err := readJSONFile(filepath.Join(basePath, preprocessorsFile), &preprocessors); err != nil {
		return nil, err
	}

	var coxModels []coxParams
	if err := readJSONFile(filepath.Join(basePath, modelsFile), &coxModels); err != nil {
		return nil, err
	}

	if len(preprocessors) != len(coxModels) {
		return nil, fmt.Errorf("asset bundle is inconsistent: %d preprocessors vs %d models",
			len(preprocessors), len(coxModels))
	}
	if len(coxModels) == 0 {
		return nil, fmt.Errorf("asset bundle for %s contains no folds", method)
	}

	folds := make([]FoldAsset, len(coxModels))
	for i := range coxModels {
		scaler, err := buildScaler(preprocessors[i])
		if err != nil {
			return nil, fmt.Errorf("fold %d preprocessor: %w", i, err)
		}
		model, err := buildCoxModel(coxModels[i], features)
		if err != nil {
			return nil, fmt.Errorf("fold %d model: %w", i, err)
		}
		folds[i] = FoldAsset{Preprocessor: scaler, Model: model}
	}

	return &ModelAssetBundle{Method: method, Features: features, Folds: folds}, nil
}

// buildScaler раскладывает параметры по собственному порядку колонок скейлера
func buildScaler(p scalerParams) (*StandardScaler, error) {
	scaler := &StandardScaler{
		Columns: p.Columns,
		Mean:    make([]float64, len(p.Columns)),
		Scale:   make([]float64, len(p.Columns)),
	}
	for i, col := range p.Columns {
		mean, ok := p.Mean[col]
		if !ok {
			return nil, fmt.Errorf("mean for column %q is missing", col)
		}
		scale, ok := p.Scale[col]
		if !ok {
			return nil, fmt.Errorf("scale for column %q is missing", col)
		}
		scaler.Mean[i] = mean
		scaler.Scale[i] = scale
	}
	return scaler, nil
}

// buildCoxModel раскладывает коэффициенты в порядке схемы признаков
func buildCoxModel(p coxParams, features []string) (*CoxModel, error) {
	model := &CoxModel{
		Coefficients: make([]float64, len(features)),
		Baseline:     p.BaselineSurvival,
	}
	for i, f := range features {
		coef, ok := p.Coefficients[f]
		if !ok {
			return nil, fmt.Errorf("coefficient for feature %q is missing", f)
		}
		model.Coefficients[i] = coef
	}
	if len(model.Baseline) == 0 {
		return nil, fmt.Errorf("baseline survival curve is empty")
	}
	return model, nil
}

// LoadThresholds читает клинические пороги из configDir/thresholds.json.
// Отсутствие файла или ключа семейства — восстановимый пробел
// конфигурации: вызывающая сторона логирует ошибку и продолжает с
// порогами по умолчанию.
func LoadThresholds(configDir, method string) (models.Thresholds, error) {
	var byMethod map[string]models.Thresholds
	if err := readJSONFile(filepath.Join(configDir, "thresholds.json"), &byMethod); err != nil {
		return models.Thresholds{}, err
	}
	t, ok := byMethod[method]
	if !ok {
		return models.Thresholds{}, fmt.Errorf("no thresholds configured for method %q", method)
	}
	return t, nil
}

// LoadFeatureBounds читает границы обучающего распределения из
// configDir/feature_bounds.json. Отсутствие файла не фатально:
// проверка правдоподобия просто пропускается.
func LoadFeatureBounds(configDir string) (models.FeatureBounds, error) {
	var bounds models.FeatureBounds
	if err := readJSONFile(filepath.Join(configDir, "feature_bounds.json"), &bounds); err != nil {
		return nil, err
	}
	return bounds, nil
}

func readJSONFile(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AssetsNotFoundError{Path: path}
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
