// internal/termview/termview_test.go
package termview

import (
	"strings"
	"testing"

	"go-hex-territory/internal/app"
	"go-hex-territory/internal/config"
	"go-hex-territory/pkg/hexmap"

	"github.com/gdamore/tcell/v2"
)

func newTestGame() *app.Game {
	s := config.Default()
	s.Seed = 3
	s.Spawn.InitialDelay = 1000
	return app.NewGame(s)
}

func TestCellOriginOddColumnsRaised(t *testing.T) {
	x, y := CellOrigin(hexmap.Hex{Col: 0, Row: 0}, 9)
	if x != 0 || y != 17 {
		t.Fatalf("bottom-left cell: got (%d,%d), want (0,17)", x, y)
	}
	x, y = CellOrigin(hexmap.Hex{Col: 1, Row: 0}, 9)
	if x != 4 || y != 16 {
		t.Fatalf("odd column is half a cell higher: got (%d,%d), want (4,16)", x, y)
	}
	_, y = CellOrigin(hexmap.Hex{Col: 1, Row: 8}, 9)
	if y != 0 {
		t.Fatalf("top odd cell: got y=%d, want 0", y)
	}
	if w, h := BoardSize(9, 9); w != 35 || h != 18 {
		t.Fatalf("board size: got %dx%d, want 35x18", w, h)
	}
}

func TestCellOriginsDoNotOverlap(t *testing.T) {
	hm := hexmap.NewHexMap(6, 5)
	seen := map[[2]int]hexmap.Hex{}
	for _, h := range hm.Hexes() {
		x, y := CellOrigin(h, hm.Height)
		if other, dup := seen[[2]int{x, y}]; dup {
			t.Fatalf("%v and %v share origin (%d,%d)", h, other, x, y)
		}
		seen[[2]int{x, y}] = h
	}
}

func TestControllerPlansAndSubmits(t *testing.T) {
	g := newTestGame()
	c := NewController(g)

	c.Handle(tcell.KeyRune, 'W')
	c.Handle(tcell.KeyRune, 'W')
	c.Handle(tcell.KeyRune, 'E')
	c.Handle(tcell.KeyBackspace2, 0)
	planned := c.Planned()
	want := []hexmap.Hex{{Col: 4, Row: 5}, {Col: 4, Row: 6}}
	if len(planned) != len(want) || planned[0] != want[0] || planned[1] != want[1] {
		t.Fatalf("planned: got %v, want %v", planned, want)
	}
	if g.Walker.IsMoving() {
		t.Fatal("planning should not move the player")
	}

	c.Handle(tcell.KeyEnter, 0)
	if len(c.Planned()) != 0 {
		t.Fatal("enter should clear the plan")
	}
	if got := g.PlannedPath(); len(got) != 2 {
		t.Fatalf("walker path after enter: got %v", got)
	}
}

func TestControllerPlanStopsAtEdge(t *testing.T) {
	g := newTestGame()
	c := NewController(g)
	for i := 0; i < 10; i++ {
		c.Handle(tcell.KeyRune, 'S')
	}
	if n := len(c.Planned()); n != 4 {
		t.Fatalf("planned steps down from the center: got %d, want 4", n)
	}
}

func TestControllerImmediateStepAndQuit(t *testing.T) {
	g := newTestGame()
	c := NewController(g)
	c.Handle(tcell.KeyRune, 'd')
	if target, ok := g.Walker.Target(); !ok || target != (hexmap.Hex{Col: 5, Row: 3}) {
		t.Fatalf("lower-case d should step south-east, got %v %v", target, ok)
	}
	if c.Handle(tcell.KeyEscape, 0) != ActionQuit {
		t.Fatal("escape should quit")
	}
	if c.Handle(tcell.KeyRune, 'x') != ActionNone {
		t.Fatal("unknown keys are ignored")
	}
}

func TestViewDrawsPlayerAndStatus(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(100, 40)
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	g := newTestGame()
	NewView(screen, g).Draw(nil)

	x, y := CellOrigin(g.PlayerHex(), g.HexMap.Height)
	if r, _, _, _ := screen.GetContent(boardLeft+x+1, boardTop+y); r != '@' {
		t.Fatalf("player glyph: got %q, want '@'", r)
	}

	_, boardH := BoardSize(g.HexMap.Width, g.HexMap.Height)
	var line strings.Builder
	for i := 0; i < 20; i++ {
		r, _, _, _ := screen.GetContent(boardLeft+i, boardTop+boardH+1)
		line.WriteRune(r)
	}
	if !strings.HasPrefix(line.String(), "score 0") {
		t.Fatalf("status line: got %q", line.String())
	}
}

func TestStatusLinesGameOver(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 3; i++ {
		g.Player().Invincible = 0
		g.HitFrom(hexmap.North)
	}
	lines := StatusLines(g)
	if !strings.HasPrefix(lines[len(lines)-1], "GAME OVER") {
		t.Fatalf("last status line: %q", lines[len(lines)-1])
	}
}
