// Package inference реализует ансамблевый конвейер предсказания:
// проверку правдоподобия входа, прогон признаков пациента через
// препроцессоры и Cox-модели всех фолдов, агрегацию консенсусной
// функции дожития и относительного риска, стратификацию риска.
package inference

import (
	"fmt"

	"github.com/exascience/pargo/parallel"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/assets"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/pkg/utils"
)

// Infer выполняет ансамблевое предсказание для одного пациента:
//  1. Сверяет вход со схемой признаков; нехватка признака —
//     IncompleteInputError до обращения к какому-либо фолду.
//  2. Для каждого фолда: препроцессор -> выравнивание под схему ->
//     функция дожития и частичный риск. Фолды независимы и
//     обсчитываются параллельно; результаты складываются в слоты по
//     индексу фолда, поэтому итог побитово воспроизводим.
//  3. Агрегирует: консенсусная кривая — поточечное среднее кривых
//     фолдов (сетки времени обязаны совпадать), консенсусный RR —
//     среднее частичных рисков.
//  4. Стратифицирует RR по порогам.
func Infer(features models.FeatureVector, bundle *assets.ModelAssetBundle, thresholds models.Thresholds) (survival.Curve, float64, models.RiskTier, error) {
	row, err := materializeRow(features, bundle.Features)
	if err != nil {
		return nil, 0, "", err
	}
	if len(bundle.Folds) == 0 {
		return nil, 0, "", fmt.Errorf("asset bundle %s contains no folds", bundle.Method)
	}

	curves := make([]survival.Curve, len(bundle.Folds))
	hazards := make([]float64, len(bundle.Folds))
	errs := make([]error, len(bundle.Folds))

	parallel.Range(0, len(bundle.Folds), 0, func(low, high int) {
		for i := low; i < high; i++ {
			curves[i], hazards[i], errs[i] = evalFold(row, bundle.Folds[i], bundle.Features)
		}
	})
	for i, foldErr := range errs {
		if foldErr != nil {
			return nil, 0, "", fmt.Errorf("fold %d: %w", i, foldErr)
		}
	}

	avgCurve, err := averageCurves(curves)
	if err != nil {
		return nil, 0, "", err
	}
	relativeRisk := utils.Mean(hazards)

	return avgCurve, relativeRisk, Stratify(relativeRisk, thresholds), nil
}

// materializeRow отбирает из входа признаки схемы; лишние ключи
// игнорируются, недостающие собираются в IncompleteInputError
func materializeRow(features models.FeatureVector, schema []string) (models.FeatureVector, error) {
	row := make(models.FeatureVector, len(schema))
	missing := []string{}
	for _, name := range schema {
		v, ok := features[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		row[name] = v
	}
	if len(missing) > 0 {
		return nil, &IncompleteInputError{Missing: missing}
	}
	return row, nil
}

// evalFold прогоняет строку признаков через один фолд
func evalFold(row models.FeatureVector, fold assets.FoldAsset, schema []string) (survival.Curve, float64, error) {
	values, columns, err := fold.Preprocessor.Transform(row)
	if err != nil {
		return nil, 0, err
	}

	// Препроцессор мог переставить колонки; модель чувствительна к
	// позициям, поэтому принудительно восстанавливаем порядок схемы
	x, err := alignToSchema(values, columns, schema)
	if err != nil {
		return nil, 0, err
	}

	curve, err := fold.Model.PredictSurvivalFunction(x)
	if err != nil {
		return nil, 0, err
	}
	hazard, err := fold.Model.PredictPartialHazard(x)
	if err != nil {
		return nil, 0, err
	}
	return curve, hazard, nil
}

// alignToSchema переупорядочивает именованные значения препроцессора
// строго под схему модели. Отсутствие требуемой колонки — дефект
// артефактов, а не временный сбой: возвращается SchemaMismatchError
// с полным составом ожидаемых и фактических колонок.
func alignToSchema(values []float64, columns []string, schema []string) ([]float64, error) {
	if len(values) != len(columns) {
		return nil, &SchemaMismatchError{Expected: schema, Actual: columns}
	}
	byName := make(map[string]float64, len(columns))
	for i, col := range columns {
		byName[col] = values[i]
	}

	x := make([]float64, len(schema))
	for i, name := range schema {
		v, ok := byName[name]
		if !ok {
			return nil, &SchemaMismatchError{Expected: schema, Actual: columns}
		}
		x[i] = v
	}
	return x, nil
}

// averageCurves строит консенсусную кривую как поточечное
// арифметическое среднее кривых фолдов. Кривые обязаны разделять
// общую временную сетку; расхождение не доэкстраполируется, а
// считается фатальной несогласованностью артефактов.
func averageCurves(curves []survival.Curve) (survival.Curve, error) {
	base := curves[0]
	for _, c := range curves[1:] {
		if len(c) != len(base) {
			return nil, ErrCurveGridMismatch
		}
		for j := range c {
			if c[j].Time != base[j].Time {
				return nil, ErrCurveGridMismatch
			}
		}
	}

	avg := make(survival.Curve, len(base))
	for j := range base {
		probs := make([]float64, len(curves))
		for i, c := range curves {
			probs[i] = c[j].Probability
		}
		avg[j] = survival.Point{Time: base[j].Time, Probability: utils.Mean(probs)}
	}
	return avg, nil
}
