package assets

import (
	"fmt"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
)

// StandardScaler замороженная стандартизация признаков одного фолда:
// (x - mean) / scale по каждой колонке. Параметры сняты с обучающей
// выборки фолда и после загрузки не меняются.
type StandardScaler struct {
	Columns []string  // собственный порядок колонок скейлера
	Mean    []float64 // среднее по колонке в обучающем фолде
	Scale   []float64 // стандартное отклонение по колонке
}

// Transform стандартизирует строку признаков. Возвращает значения в
// порядке колонок самого скейлера — выравнивание под схему модели
// выполняет вызывающая сторона.
func (s *StandardScaler) Transform(row models.FeatureVector) ([]float64, []string, error) {
	values := make([]float64, len(s.Columns))
	for i, col := range s.Columns {
		v, ok := row[col]
		if !ok {
			return nil, nil, fmt.Errorf("preprocessor input is missing feature %q", col)
		}
		if s.Scale[i] == 0 {
			// Вырожденная колонка: оставляем центрированное значение
			values[i] = v - s.Mean[i]
			continue
		}
		values[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return values, s.Columns, nil
}
