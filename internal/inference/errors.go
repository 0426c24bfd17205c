package inference

import (
	"errors"
	"fmt"
	"strings"
)

// IncompleteInputError во входных данных пациента нет признака,
// требуемого схемой модели. Фатально для конкретного запроса;
// возникает до обращения к какому-либо фолду.
type IncompleteInputError struct {
	Missing []string
}

func (e *IncompleteInputError) Error() string {
	return fmt.Sprintf("incomplete input: missing required features: %s",
		strings.Join(e.Missing, ", "))
}

// SchemaMismatchError выход препроцессора не покрывает схему модели.
// Это дефект артефактов (повреждение или рассинхронизация версий),
// а не ошибка пользователя: повторять запрос бессмысленно.
type SchemaMismatchError struct {
	Expected []string
	Actual   []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: model requires columns [%s], preprocessor produced [%s]",
		strings.Join(e.Expected, ", "), strings.Join(e.Actual, ", "))
}

// ErrCurveGridMismatch фолды вернули кривые с разными временными
// сетками. Интерполяция не предусмотрена: расхождение считается
// фатальной несогласованностью артефактов.
var ErrCurveGridMismatch = errors.New("fold survival curves disagree on the time grid")
