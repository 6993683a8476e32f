// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-hex-territory/internal/config"
	"go-hex-territory/internal/entity"
	"go-hex-territory/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности поверх сетки
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	// Сначала объекты с зонами и кольцо таймера вокруг них
	for id, securable := range s.ecs.Securables {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := utils.WorldToScreen(pos.X, pos.Y)
		if left, active := securable.Zone.TimeLeft(); active && securable.Zone.Window() > 0 {
			frac := left / securable.Zone.Window()
			drawArc(screen, float32(x), float32(y), config.AnchorRadius+6, frac, config.ProgressColor)
		}
	}

	for id, render := range s.ecs.Renderables {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := utils.WorldToScreen(pos.X, pos.Y)

		c := render.Color
		if flash, hit := s.ecs.DamageFlashes[id]; hit && flash.Progress() < 1 {
			c = config.PlayerHitColor
		}
		// мигание во время неуязвимости
		if ps, isPlayer := s.ecs.PlayerState[id]; isPlayer && ps.IsInvincible() && math.Sin(gameTime*30) < 0 {
			c.A /= 3
		}
		if render.HasStroke {
			vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius+2, config.IndicatorStroke, true)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius, c, true)
	}
}

// drawArc рисует долю окружности frac начиная сверху по часовой стрелке
func drawArc(screen *ebiten.Image, x, y, radius float32, frac float64, c color.RGBA) {
	if frac <= 0 {
		return
	}
	var path vector.Path
	start := float32(-math.Pi / 2)
	end := start + float32(2*math.Pi*math.Min(frac, 1))
	path.Arc(x, y, radius, start, end, vector.Clockwise)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 3})
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}
