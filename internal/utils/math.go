// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistSq возвращает квадрат расстояния между двумя точками.
// Удобно для сравнения с радиусами без извлечения корня.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize приводит вектор к единичной длине. Нулевой вектор остается нулевым.
func Normalize(x, y float64) (float64, float64) {
	l := math.Sqrt(x*x + y*y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// ClampLen ограничивает длину вектора максимумом maxLen.
func ClampLen(x, y, maxLen float64) (float64, float64) {
	l := math.Sqrt(x*x + y*y)
	if l <= maxLen || l == 0 {
		return x, y
	}
	return x / l * maxLen, y / l * maxLen
}

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
