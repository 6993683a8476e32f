// pkg/hexmap/utils.go
package hexmap

import "math"

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059

// parity возвращает 0 для чётной колонки и 1 для нечётной
func parity(col int) float64 {
	return float64(col & 1)
}

// roundToInt округляет до ближайшего целого, половины от нуля
func roundToInt(v float64) int {
	return int(math.Round(v))
}
