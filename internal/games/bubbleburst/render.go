package bubbleburst

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bubbleburst/internal/board"
	"github.com/vovakirdan/bubbleburst/internal/core"
)

const (
	glyphBubble  = '●'
	glyphHovered = '◉'
	glyphDoomed  = '✺'
)

// screenColor maps a token colour to a terminal colour.
func screenColor(c board.Color) core.Color {
	switch c {
	case board.ColorRed:
		return core.ColorRed
	case board.ColorGreen:
		return core.ColorGreen
	case board.ColorBlue:
		return core.ColorBlue
	case board.ColorYellow:
		return core.ColorYellow
	case board.ColorPurple:
		return core.ColorMagenta
	case board.ColorOrange:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.grid == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBoxColored(g.layout.frame, core.ColorGray)

	if g.play.active {
		g.renderPlayback(dst)
	} else {
		g.renderBoard(dst)
	}

	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	need := computeLayout(g.grid.Width(), g.grid.Height(), 0, 0)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", core.Max(need.frame.W, minWidth), hudHeight+need.frame.H+footer))
}

// renderHUD draws the title, score, moves and remaining bubbles.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(g.layout.hudY, g.Title(), core.ColorBrightCyan)

	stats := fmt.Sprintf("Score: %d   Moves: %d   Bubbles left: %d", g.tally.Score, g.tally.Moves, g.grid.TokenCount())
	dst.DrawTextCentered(g.layout.hudY+1, stats)
}

// renderBoard draws the settled board with cursor and hovered group.
func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			c := board.C(x, y)
			sx, sy := g.layout.screenPos(x, y)
			cell := core.Cell{Rune: ' '}

			if color := g.grid.ColorAt(c); color != board.ColorNone {
				cell.Rune = glyphBubble
				cell.Color = screenColor(color)
				if g.hoverOK && g.hovered.Removable() && g.hovered.Contains(c) {
					cell.Rune = glyphHovered
					cell.Color = cell.Color.Bright()
				}
			}
			if c == g.cursor && !g.Finished() {
				cell.Bg = core.ColorDarkGray
				if cell.Rune == ' ' {
					cell.Rune = '·'
				}
			}
			dst.SetCell(sx, sy, cell)
		}
	}
}

// renderPlayback draws the sprites of the running animation.
func (g *Game) renderPlayback(dst *core.Screen) {
	for _, s := range g.play.visible() {
		x := int(math.Round(float64(s.x)))
		y := int(math.Round(float64(s.y)))
		sx, sy := g.layout.screenPos(x, y)

		cell := core.Cell{Rune: glyphBubble, Color: screenColor(s.color)}
		if s.doomed {
			cell.Rune = glyphDoomed
			cell.Color = cell.Color.Bright()
		}
		dst.SetCell(sx, sy, cell)
	}
}

// renderFooter draws the status message and control hints.
func (g *Game) renderFooter(dst *core.Screen) {
	y := g.layout.footer
	switch {
	case g.message != "":
		dst.DrawTextCenteredColored(y, g.message, core.ColorBrightYellow)
	case g.phase == PhaseIdle && g.hoverOK && g.hovered.Removable():
		n := g.hovered.Len()
		dst.DrawTextCentered(y, fmt.Sprintf("%d bubbles: +%d", n, board.ScoreDelta(n)))
	}
	dst.DrawTextCenteredColored(y+1, g.Controls(), core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX, centerY := g.layout.frame.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	score := fmt.Sprintf("Score: %d in %d moves", g.tally.Score, g.tally.Moves)
	switch g.phase {
	case PhaseCleared:
		g.drawOverlay(dst, centerX, centerY, "BOARD CLEARED!", score, g.leaderboardLine(), "Press R to play again")
	case PhaseGameOver:
		left := fmt.Sprintf("%d bubbles left", g.grid.TokenCount())
		g.drawOverlay(dst, centerX, centerY, "NO MORE MOVES", score, left, g.leaderboardLine(), "Press R to play again")
	}
}

func (g *Game) leaderboardLine() string {
	switch {
	case g.placement == nil:
		return ""
	case g.placement.Updated:
		return fmt.Sprintf("Leaderboard updated: #%d", g.placement.Rank)
	default:
		return "Leaderboard not updated"
	}
}

// drawOverlay draws a centered text overlay. Empty lines are skipped.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	var shown []string
	maxLen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		shown = append(shown, line)
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(shown) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBoxColored(box, core.ColorBrightWhite)

	for i, line := range shown {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Aim: arrows/mouse | Pop: enter/click | ?: Hint | P: Pause | Q: Quit"
}
