// internal/component/render.go
package component

import "image/color"

// Renderable круг в мировых координатах
type Renderable struct {
	Color      color.RGBA
	Radius     float32 // текущий радиус, его меняют эффекты
	BaseRadius float32
	HasStroke  bool
	Pulsing    bool
	Phase      float64 // секунды с начала пульсации
}

// NewRenderable круг постоянного радиуса
func NewRenderable(c color.RGBA, radius float32, stroke bool) *Renderable {
	return &Renderable{Color: c, Radius: radius, BaseRadius: radius, HasStroke: stroke}
}
