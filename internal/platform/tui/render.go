package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sunskim/internal/core"
)

var colorStyles sync.Map // core.Color -> lipgloss.Style

// styleFor returns the cached foreground style for a hex color.
func styleFor(c core.Color) lipgloss.Style {
	if v, ok := colorStyles.Load(c); ok {
		return v.(lipgloss.Style)
	}
	v, _ := colorStyles.LoadOrStore(c, lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))))
	return v.(lipgloss.Style)
}

// RenderScreen turns the cell buffer into terminal output. Cells sharing a
// color are styled as one span; default-colored spans are written bare.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out, span strings.Builder
	out.Grow(w*h*2 + h)

	flush := func(c core.Color) {
		if span.Len() == 0 {
			return
		}
		if c == core.ColorDefault {
			out.WriteString(span.String())
		} else {
			out.WriteString(styleFor(c).Render(span.String()))
		}
		span.Reset()
	}

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		spanColor := core.ColorDefault
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != spanColor {
				flush(spanColor)
				spanColor = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		flush(spanColor)
	}
	return out.String()
}
