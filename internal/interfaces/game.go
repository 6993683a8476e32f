// internal/interfaces/game.go
package interfaces

import "go-hex-territory/pkg/hexmap"

// Game команды, которые фронтенды отдают забегу
type Game interface {
	MoveByIndex(dir int) bool
	MoveByPath(path []hexmap.Hex) int
	MoveToward(x, y float64, steps int) int
	RouteTo(target hexmap.Hex) int
	HitFrom(d hexmap.Direction) bool
	Restart()
	Update(deltaTime float64)
}
