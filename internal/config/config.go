// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// PixelsPerUnit сколько пикселей занимает одна мировая единица (ширина гекса)
	PixelsPerUnit    = 72.0
	HexSize          = PixelsPerUnit / 2 // радиус описанной окружности гекса
	MapCenterOffsetY = 20.0

	PlayerRadius     = 14.0
	AnchorRadius     = 10.0
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	StrokeWidth      = 2.0

	ClickStepsShift = 3 // шагов по клику с зажатым Shift
	DragMinPixels   = 6 // порог, после которого нажатие считается протяжкой
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	NeutralColor     = color.RGBA{70, 100, 120, 220}
	TrailColor       = color.RGBA{230, 150, 60, 230}
	CapturedColor    = color.RGBA{60, 140, 220, 240}
	CellStrokeColor  = color.RGBA{110, 140, 160, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PlayerColor      = color.RGBA{255, 255, 255, 255}
	PlayerHitColor   = color.RGBA{255, 80, 80, 255}
	AnchorColor      = color.RGBA{180, 120, 60, 255}
	PathPreviewColor = color.RGBA{255, 255, 0, 128}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	MovingStateColor = color.RGBA{220, 60, 60, 220}
	IdleStateColor   = color.RGBA{70, 130, 180, 220}
	ProgressColor    = color.RGBA{255, 235, 4, 255}
	DoneColor        = color.RGBA{0, 255, 0, 255}
	HealthFullColor  = color.RGBA{220, 60, 60, 255}
	HealthEmptyColor = color.RGBA{0, 0, 0, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
)
