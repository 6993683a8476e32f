// internal/report/report.go
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnsupported = errors.New("clipboard is not available on this system")

// Stats итог забега
type Stats struct {
	Time          float64
	Score         int
	HP            int
	ZonesSecured  int
	Captures      int
	CapturedCells int
	GridWidth     int
	GridHeight    int
	Seed          int64
	Over          bool
}

// Coverage доля захваченных клеток, 0..1
func (s Stats) Coverage() float64 {
	total := s.GridWidth * s.GridHeight
	if total <= 0 {
		return 0
	}
	return float64(s.CapturedCells) / float64(total)
}

// Summary многострочный текст для буфера обмена и лога
func Summary(s Stats) string {
	var b strings.Builder
	status := "in progress"
	if s.Over {
		status = "over"
	}
	fmt.Fprintf(&b, "hex territory run (%s)\n", status)
	fmt.Fprintf(&b, "grid:      %dx%d seed %d\n", s.GridWidth, s.GridHeight, s.Seed)
	fmt.Fprintf(&b, "time:      %.1fs\n", s.Time)
	fmt.Fprintf(&b, "score:     %d\n", s.Score)
	fmt.Fprintf(&b, "hp:        %d\n", s.HP)
	fmt.Fprintf(&b, "captured:  %d cells in %d loops (%.0f%%)\n", s.CapturedCells, s.Captures, s.Coverage()*100)
	fmt.Fprintf(&b, "secured:   %d zones\n", s.ZonesSecured)
	return b.String()
}

// CopyToClipboard кладёт Summary в системный буфер обмена
func CopyToClipboard(s Stats) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(Summary(s)); err != nil {
		return fmt.Errorf("copy run report: %w", err)
	}
	return nil
}
