// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Approach сдвигает value к target не больше чем на step
func Approach(value, target, step float64) float64 {
	if value < target {
		value += step
		if value > target {
			return target
		}
		return value
	}
	value -= step
	if value < target {
		return target
	}
	return value
}
