// internal/ui/secured_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// SecuredIndicator число захваченных зон римскими цифрами.
type SecuredIndicator struct {
	X, Y         float32
	Color        color.RGBA
	MilestoneClr color.RGBA
	OutlineColor color.RGBA
	face         font.Face
}

func NewSecuredIndicator(x, y float32, face font.Face, c, milestone color.RGBA) *SecuredIndicator {
	return &SecuredIndicator{
		X:            x,
		Y:            y,
		Color:        c,
		MilestoneClr: milestone,
		OutlineColor: color.RGBA{0, 0, 0, 255},
		face:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *SecuredIndicator) Draw(screen *ebiten.Image, secured int) {
	label := toRoman(secured)
	if label == "" {
		return
	}
	c := i.Color
	if secured%5 == 0 {
		c = i.MilestoneClr
	}

	w := text.BoundString(i.face, label).Dx()
	x := int(i.X) - w/2
	y := int(i.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				text.Draw(screen, label, i.face, x+dx, y+dy, i.OutlineColor)
			}
		}
	}
	text.Draw(screen, label, i.face, x, y, c)
}
