package bubbleburst

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bubbleburst/internal/board"
	"github.com/vovakirdan/bubbleburst/internal/config"
	"github.com/vovakirdan/bubbleburst/internal/core"
	"github.com/vovakirdan/bubbleburst/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 12345}
}

// newTestGame returns a reset game whose board is replaced by layout.
func newTestGame(t *testing.T, layout string) *Game {
	t.Helper()
	g := New(config.DifficultyEasy)
	g.Reset(testConfig())

	grid, err := board.Parse(layout)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", layout, err)
	}
	g.grid = grid
	g.cursor = board.C(0, 0)
	g.Resize(80, 30)
	g.refreshHover()
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// runPlayback steps until the game leaves the animation phases.
func runPlayback(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		switch g.Phase() {
		case PhasePopping, PhaseFalling, PhaseSliding:
			step(g)
		default:
			return
		}
	}
	t.Fatalf("playback did not finish, phase %v", g.Phase())
}

func TestRegisteredPerDifficulty(t *testing.T) {
	for _, d := range config.AllDifficulties() {
		id := GameID(d)
		if !registry.Exists(id) {
			t.Errorf("game %q should be registered", id)
			continue
		}
		game, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if game.ID() != id {
			t.Errorf("ID() = %q, expected %q", game.ID(), id)
		}
		if !strings.Contains(game.Title(), d.Title()) {
			t.Errorf("Title() = %q should mention %q", game.Title(), d.Title())
		}
	}
}

func TestResetDealsFullBoard(t *testing.T) {
	tests := []struct {
		difficulty config.DifficultyPreset
		w, h       int
	}{
		{config.DifficultyEasy, 8, 8},
		{config.DifficultyMedium, 10, 10},
		{config.DifficultyHard, 12, 12},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			g := New(tc.difficulty)
			g.Reset(testConfig())

			if g.grid.Width() != tc.w || g.grid.Height() != tc.h {
				t.Errorf("board is %dx%d, expected %dx%d", g.grid.Width(), g.grid.Height(), tc.w, tc.h)
			}
			if g.Remaining() != tc.w*tc.h {
				t.Errorf("Remaining() = %d, expected %d", g.Remaining(), tc.w*tc.h)
			}
			if g.Phase() != PhaseIdle {
				t.Errorf("Phase() = %v, expected idle", g.Phase())
			}
			if g.State().Score != 0 || g.State().GameOver {
				t.Errorf("fresh state = %+v", g.State())
			}
		})
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() Snapshot {
		g := New(config.DifficultyMedium)
		g.Reset(testConfig())
		for i := 0; i < 200; i++ {
			actions := []core.Action{core.ActionRight}
			if i%3 == 0 {
				actions = append(actions, core.ActionDown)
			}
			if i%5 == 0 {
				actions = append(actions, core.ActionConfirm)
			}
			step(g, actions...)
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("same seed produced different games:\n%+v\n%+v", a, b)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newTestGame(t, "RG\nBY")

	step(g, core.ActionLeft)
	step(g, core.ActionDown)
	if g.cursor != board.C(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", g.cursor)
	}

	step(g, core.ActionUp)
	step(g, core.ActionUp)
	step(g, core.ActionRight)
	step(g, core.ActionRight)
	if g.cursor != board.C(1, 1) {
		t.Errorf("cursor = %v, expected (1,1)", g.cursor)
	}
}

func TestPopSingletonIsRejected(t *testing.T) {
	g := newTestGame(t, "RGG")

	step(g, core.ActionConfirm)

	if g.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", g.Phase())
	}
	if g.Tally().Score != 0 || g.Remaining() != 3 {
		t.Errorf("singleton pop changed the game: %+v", g.Snapshot())
	}
	if !strings.Contains(g.message, "single") {
		t.Errorf("message = %q, expected failed-selection feedback", g.message)
	}
}

func TestPopScoresAndSettles(t *testing.T) {
	g := newTestGame(t, `
		BG.
		RRG
	`)

	step(g, core.ActionConfirm)

	if g.Phase() != PhasePopping {
		t.Fatalf("Phase() = %v, expected popping", g.Phase())
	}
	if got := g.Tally(); got.Score != 6 || got.Moves != 1 || got.Popped != 2 {
		t.Errorf("Tally() = %+v, expected score 6 after one pop of 2", got)
	}

	runPlayback(t, g)

	if g.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v, expected idle", g.Phase())
	}
	// B and G fall into row 0; no column is empty so nothing slides.
	if got := g.grid.String(); got != "...\nBGG" {
		t.Errorf("board =\n%s", got)
	}
	if g.Snapshot().Hovered != 1 {
		t.Errorf("hover should be recomputed after settling, got %d", g.Snapshot().Hovered)
	}
}

func TestPlaybackEndsWhereBoardEnds(t *testing.T) {
	g := newTestGame(t, `
		YRG
		BRG
		RRG
	`)
	g.cursor = board.C(1, 1)
	g.refreshHover()

	step(g, core.ActionConfirm)

	sawFall, sawSlide := false, false
	for i := 0; i < 1000 && g.play.active; i++ {
		sawFall = sawFall || g.Phase() == PhaseFalling
		sawSlide = sawSlide || g.Phase() == PhaseSliding
		final := g.play
		step(g)
		if !g.play.active {
			for _, s := range final.visible() {
				tok, ok := g.grid.Token(s.token)
				if !ok {
					t.Fatalf("sprite for removed token %d still visible", s.token)
				}
				if float32(tok.Cell.X) != s.x || float32(tok.Cell.Y) != s.y {
					t.Errorf("sprite %d ended at (%v,%v), token is at %v", s.token, s.x, s.y, tok.Cell)
				}
			}
		}
	}

	if !sawFall || !sawSlide {
		t.Errorf("expected fall and slide phases, saw fall=%v slide=%v", sawFall, sawSlide)
	}
	if got := g.grid.String(); got != "..G\n.YG\n.BG" {
		t.Errorf("board =\n%s", got)
	}
}

func TestClearingBoardWins(t *testing.T) {
	g := newTestGame(t, "RR")

	step(g, core.ActionConfirm)
	runPlayback(t, g)

	if g.Phase() != PhaseCleared {
		t.Fatalf("Phase() = %v, expected cleared", g.Phase())
	}
	state := g.State()
	if !state.GameOver || state.Score != 6 {
		t.Errorf("State() = %+v, expected finished with score 6", state)
	}
	moves, cleared := g.RoundResult()
	if moves != 1 || !cleared {
		t.Errorf("RoundResult() = (%d, %v), expected (1, true)", moves, cleared)
	}
}

func TestNoMovesEndsGame(t *testing.T) {
	g := newTestGame(t, "RRG")

	step(g, core.ActionConfirm)
	runPlayback(t, g)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", g.Phase())
	}
	if g.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", g.Remaining())
	}
	_, cleared := g.RoundResult()
	if cleared {
		t.Error("round with a bubble left should not count as cleared")
	}

	// Input is ignored once finished.
	step(g, core.ActionConfirm)
	if g.Tally().Moves != 1 {
		t.Errorf("Moves = %d after game over, expected 1", g.Tally().Moves)
	}
}

func TestPointerMovesCursor(t *testing.T) {
	g := newTestGame(t, `
		RG
		BY
	`)

	sx, sy := g.layout.screenPos(1, 1)
	in := core.NewInputFrame()
	in.Point(sx, sy)
	g.Step(in)

	if g.cursor != board.C(1, 1) {
		t.Errorf("cursor = %v, expected (1,1)", g.cursor)
	}

	// Outside the board the cursor stays put.
	in = core.NewInputFrame()
	in.Point(0, 0)
	g.Step(in)
	if g.cursor != board.C(1, 1) {
		t.Errorf("cursor moved to %v for a pointer outside the board", g.cursor)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, "RR")

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	step(g, core.ActionConfirm)
	if g.Tally().Moves != 0 {
		t.Error("pop should be ignored while paused")
	}

	step(g, core.ActionPause)
	step(g, core.ActionConfirm)
	if g.Tally().Moves != 1 {
		t.Error("pop should work after unpausing")
	}
}

func TestHintSelectsLargestGroup(t *testing.T) {
	g := newTestGame(t, `
		GGB
		RGB
	`)

	step(g, core.ActionHint)

	if !g.hoverOK || g.hovered.Len() != 3 || g.hovered.Color != board.ColorGreen {
		t.Errorf("hint should hover the green group, got %+v", g.hovered)
	}
}

func TestRenderShowsHUDAndOverlay(t *testing.T) {
	g := newTestGame(t, "RR")
	screen := core.NewScreen(80, 30)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Bubbleburst (Easy)") {
		t.Error("render should include the title")
	}
	if !strings.Contains(out, "Bubbles left: 2") {
		t.Error("render should include the remaining count")
	}

	step(g, core.ActionConfirm)
	runPlayback(t, g)
	g.SetLeaderboardResult(1, true)

	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "BOARD CLEARED!") {
		t.Error("render should show the cleared overlay")
	}
	if !strings.Contains(out, "Leaderboard updated: #1") {
		t.Error("render should show the leaderboard result")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.DifficultyHard)
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("a too-small window should pause the game")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("render should explain the window is too small")
	}

	g.Resize(80, 30)
	if g.State().Paused {
		t.Error("resizing to a large window should unpause")
	}
}
