// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"

	"go-hex-territory/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ScreenProjector переводит гекс в пиксели экрана
type ScreenProjector func(h hexmap.Hex) (x, y float64)

type HexRenderer struct {
	hexMap    *hexmap.HexMap
	colors    CellColors
	hexSize   float64
	project   ScreenProjector
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	fontFace  font.Face
	mapImage  *ebiten.Image // предрендеренная сетка
	dirty     bool
	ShowLabel bool
}

func NewHexRenderer(hexMap *hexmap.HexMap, colors CellColors, hexSize float64, project ScreenProjector, screenWidth, screenHeight int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &HexRenderer{
		hexMap:    hexMap,
		colors:    colors,
		hexSize:   hexSize,
		project:   project,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 18),
		fillIs:    make([]uint16, 0, 18),
		strokeVs:  make([]ebiten.Vertex, 0, 36),
		strokeIs:  make([]uint16, 0, 36),
		fontFace:  basicfont.Face7x13,
		mapImage:  ebiten.NewImage(screenWidth, screenHeight),
		dirty:     true,
		ShowLabel: true,
	}
	// сетку перерисовываем только когда меняется состояние клеток
	hexMap.OnStateChange(func(hexmap.Hex, hexmap.CellState, hexmap.CellState) {
		r.dirty = true
	})
	return r
}

// Invalidate заставляет перерисовать сетку на следующем кадре
func (r *HexRenderer) Invalidate() {
	r.dirty = true
}

// HexCorners вершины flat-top гекса с центром (cx, cy), начиная с правой
func HexCorners(cx, cy, size float64) [6][2]float64 {
	var corners [6][2]float64
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		corners[i] = [2]float64{cx + size*math.Cos(angle), cy + size*math.Sin(angle)}
	}
	return corners
}

func hexPath(cx, cy, size float64) vector.Path {
	path := vector.Path{}
	for i, c := range HexCorners(cx, cy, size) {
		if i == 0 {
			path.MoveTo(float32(c[0]), float32(c[1]))
		} else {
			path.LineTo(float32(c[0]), float32(c[1]))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) renderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for _, hex := range r.hexMap.Hexes() {
		state, _ := r.hexMap.State(hex)
		fill := r.colors.Fill(state)
		x, y := r.project(hex)
		r.fillHex(r.mapImage, x, y, r.hexSize, fill)
		r.strokeHex(r.mapImage, x, y, r.hexSize, LightenColor(fill, 40), r.colors.StrokeWidth)
		if r.ShowLabel {
			r.drawLabel(r.mapImage, hex, x, y, r.colors.TextOn(fill))
		}
	}
	r.dirty = false
}

// Draw рисует сетку, подсветку клеток и предпросмотр пути
func (r *HexRenderer) Draw(screen *ebiten.Image, highlight func(h hexmap.Hex) (color.RGBA, bool), preview []hexmap.Hex, previewColor color.RGBA) {
	if r.dirty {
		r.renderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	if highlight != nil {
		for _, hex := range r.hexMap.Hexes() {
			c, ok := highlight(hex)
			if !ok {
				continue
			}
			x, y := r.project(hex)
			r.strokeHex(screen, x, y, r.hexSize*0.8, c, r.colors.StrokeWidth*2)
		}
	}

	for i, hex := range preview {
		x, y := r.project(hex)
		r.strokeHex(screen, x, y, r.hexSize*0.9, previewColor, r.colors.StrokeWidth)
		if i > 0 {
			px, py := r.project(preview[i-1])
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), r.colors.StrokeWidth, previewColor, true)
		}
	}
}

func (r *HexRenderer) fillHex(target *ebiten.Image, x, y, size float64, c color.RGBA) {
	path := hexPath(x, y, size)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) strokeHex(target *ebiten.Image, x, y, size float64, c color.RGBA, width float32) {
	path := hexPath(x, y, size)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawLabel(target *ebiten.Image, hex hexmap.Hex, x, y float64, c color.RGBA) {
	label := hex.String()
	bounds := text.BoundString(r.fontFace, label)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-w/2, int(y)+h/2, c)
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
