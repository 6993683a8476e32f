// internal/utils/coords.go
package utils

import (
	"go-hex-territory/internal/config"
	"go-hex-territory/pkg/hexmap"
)

// WorldToScreen переводит мировые координаты в пиксели экрана.
// Мировая ось Y направлена вверх, экранная вниз.
func WorldToScreen(x, y float64) (float64, float64) {
	sx := float64(config.ScreenWidth)/2 + x*config.PixelsPerUnit
	sy := float64(config.ScreenHeight)/2 + config.MapCenterOffsetY - y*config.PixelsPerUnit
	return sx, sy
}

// ScreenToWorld операция, обратная WorldToScreen
func ScreenToWorld(sx, sy float64) (float64, float64) {
	x := (sx - float64(config.ScreenWidth)/2) / config.PixelsPerUnit
	y := (float64(config.ScreenHeight)/2 + config.MapCenterOffsetY - sy) / config.PixelsPerUnit
	return x, y
}

// HexToScreen центр гекса в пикселях
func HexToScreen(hm *hexmap.HexMap, h hexmap.Hex) (float64, float64) {
	return WorldToScreen(hm.HexToWorld(h))
}

// ScreenToHex гекс под точкой экрана, может быть вне карты
func ScreenToHex(hm *hexmap.HexMap, sx, sy float64) hexmap.Hex {
	return hm.WorldToHex(ScreenToWorld(sx, sy))
}
