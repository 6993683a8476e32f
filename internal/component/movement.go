// internal/component/movement.go
package component

// Position позиция в мировых координатах (Y вверх)
type Position struct {
	X, Y float64
}

// Set переносит позицию целиком
func (p *Position) Set(x, y float64) {
	p.X, p.Y = x, y
}
