package inference

import (
	"fmt"
	"sort"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
)

// CheckPlausibility сравнивает признаки пациента с границами
// обучающего распределения и возвращает список значений вне
// диапазона в виде "имя (значение)". Проверка сугубо совещательная:
// она предупреждает о повышенной неопределённости экстраполяции,
// но никогда не блокирует предсказание. Признаки без границ и
// отсутствующие значения пропускаются; при nil-границах (файл
// конфигурации недоступен) предупреждений нет.
func CheckPlausibility(features models.FeatureVector, bounds models.FeatureBounds) []string {
	warnings := []string{}
	if bounds == nil {
		return warnings
	}

	// Сортируем имена, чтобы порядок предупреждений был стабильным
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		valRange, ok := bounds[name]
		if !ok {
			continue
		}
		val := features[name]
		if val < valRange.Min || val > valRange.Max {
			warnings = append(warnings, fmt.Sprintf("%s (%v)", name, val))
		}
	}
	return warnings
}
