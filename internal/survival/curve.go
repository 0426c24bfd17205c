// Package survival содержит тип индивидуальной функции дожития и
// чистые запросы к ней (происхождение кривой, вероятность в момент t).
package survival

import "sort"

// Point одна точка функции дожития
type Point struct {
	Time        float64 `json:"t"` // время в годах
	Probability float64 `json:"s"` // вероятность дожития S(t), [0,1]
}

// Curve функция дожития: упорядоченный по времени набор точек,
// монотонно невозрастающий по вероятности. Кривая неизменяема —
// все операции возвращают новый срез.
type Curve []Point

// EnsureOrigin гарантирует логическую точку отсчёта (t=0, p=1.0).
// Если нулевого момента нет, точка добавляется в начало, кривая
// пересортировывается по времени. Операция идемпотентна.
func (c Curve) EnsureOrigin() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })

	if len(out) == 0 || out[0].Time != 0 {
		out = append(Curve{{Time: 0, Probability: 1.0}}, out...)
	}
	return out
}

// ProbabilityAt возвращает вероятность дожития и кумулятивный риск
// в момент t по принципу "последнее известное наблюдение" (LOCF):
// берётся значение в последней точке с временем <= t. Если t раньше
// первой точки, дожитие по определению равно 1.0. За пределами
// последней точки кривая считается плоской — экстраполяции нет.
// Всегда выполняется riskProb = 1 - survivalProb.
func (c Curve) ProbabilityAt(t float64) (survivalProb, riskProb float64) {
	survivalProb = 1.0
	found := false
	var bestTime float64
	for _, p := range c {
		if p.Time <= t && (!found || p.Time >= bestTime) {
			survivalProb = p.Probability
			bestTime = p.Time
			found = true
		}
	}
	return survivalProb, 1 - survivalProb
}

// MaxTime последняя точка наблюдения кривой (0 для пустой кривой)
func (c Curve) MaxTime() float64 {
	max := 0.0
	for _, p := range c {
		if p.Time > max {
			max = p.Time
		}
	}
	return max
}
