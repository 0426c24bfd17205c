// Package assets загружает обученные артефакты ансамбля (схему признаков,
// препроцессоры и Cox-модели по фолдам кросс-валидации) и клиническую
// конфигурацию (пороги стратификации, границы обучающего распределения).
// Обучение моделей не входит в задачи сервиса: артефакты потребляются
// готовыми и после загрузки неизменяемы, поэтому безопасны для
// конкурентного чтения.
package assets

import (
	"fmt"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
)

// Preprocessor замороженный препроцессор одного фолда. Принимает сырые
// признаки пациента и возвращает преобразованные значения вместе с
// именами колонок в собственном порядке препроцессора — он может
// отличаться от порядка, который требует модель.
type Preprocessor interface {
	Transform(row models.FeatureVector) (values []float64, columns []string, err error)
}

// SurvivalModel обученная модель анализа дожития одного фолда.
// Вход x — вектор значений строго в порядке схемы признаков.
type SurvivalModel interface {
	PredictSurvivalFunction(x []float64) (survival.Curve, error)
	PredictPartialHazard(x []float64) (float64, error)
}

// FoldAsset неизменяемая пара (препроцессор, модель) одного фолда
type FoldAsset struct {
	Preprocessor Preprocessor
	Model        SurvivalModel
}

// ModelAssetBundle артефакты одного семейства моделей: общая схема
// признаков и упорядоченный набор фолдов. Загружается один раз на
// старте процесса и далее только читается.
type ModelAssetBundle struct {
	Method   string
	Features []string // порядок значим: модели чувствительны к позициям
	Folds    []FoldAsset
}

// AssetsNotFoundError отсутствуют файлы артефактов на диске
type AssetsNotFoundError struct {
	Path string
}

func (e *AssetsNotFoundError) Error() string {
	return fmt.Sprintf("model assets not found at %s", e.Path)
}
