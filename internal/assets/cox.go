package assets

import (
	"fmt"
	"math"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/survival"
)

// CoxModel обученная Cox-модель пропорциональных рисков одного фолда.
// Коэффициенты разложены строго в порядке схемы признаков, базовая
// функция дожития S0(t) снята с обучающего фолда.
type CoxModel struct {
	Coefficients []float64      // beta, в порядке схемы признаков
	Baseline     survival.Curve // базовая функция дожития S0(t)
}

// PredictPartialHazard возвращает частичный риск exp(beta * x).
// Вход уже стандартизирован (среднее 0), поэтому это относительный
// риск к среднему пациенту обучающей популяции: RR=1 — средний риск.
func (m *CoxModel) PredictPartialHazard(x []float64) (float64, error) {
	if len(x) != len(m.Coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.Coefficients), len(x))
	}
	lp := 0.0
	for i, v := range x {
		lp += m.Coefficients[i] * v
	}
	return math.Exp(lp), nil
}

// PredictSurvivalFunction возвращает индивидуальную функцию дожития
// S(t) = S0(t) ^ exp(beta * x) на временной сетке базовой кривой.
func (m *CoxModel) PredictSurvivalFunction(x []float64) (survival.Curve, error) {
	hazard, err := m.PredictPartialHazard(x)
	if err != nil {
		return nil, err
	}
	curve := make(survival.Curve, len(m.Baseline))
	for i, p := range m.Baseline {
		curve[i] = survival.Point{Time: p.Time, Probability: math.Pow(p.Probability, hazard)}
	}
	return curve, nil
}
