package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubbleburst/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-colour codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

type cellStyle struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
// SSH sessions render concurrently.
var (
	styleMu    sync.Mutex
	styleCache = map[cellStyle]lipgloss.Style{}
)

func styleFor(cs cellStyle) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()
	if st, ok := styleCache[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code, ok := ansiCodes[cs.fg]; ok {
		st = st.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[cs.bg]; ok {
		st = st.Background(lipgloss.Color(code))
	}
	styleCache[cs] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Color, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Color, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
