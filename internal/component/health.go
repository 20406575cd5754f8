// internal/component/health.go
package component

// Health — текущее и максимальное здоровье сущности.
type Health struct {
	Value float64
	Max   float64
}

// Fraction возвращает долю оставшегося здоровья [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}
