// internal/utils/math.go
package utils

// Clamp ограничивает v отрезком [lo, hi].
// Если hi < lo (поле меньше сущности), побеждает нижняя граница.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
