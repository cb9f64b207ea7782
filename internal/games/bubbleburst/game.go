// Package bubbleburst is the Bubbleburst game driver: it owns a board,
// turns cursor and pointer input into group pops, keeps score and replays
// the resulting board changes as tick-driven animation.
package bubbleburst

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubbleburst/internal/board"
	"github.com/vovakirdan/bubbleburst/internal/config"
	"github.com/vovakirdan/bubbleburst/internal/core"
	"github.com/vovakirdan/bubbleburst/internal/registry"
)

// IDPrefix prefixes every registered game ID; the suffix is the difficulty.
const IDPrefix = "bubbleburst_"

// fillAttempts bounds how often Reset re-rolls a board that starts without a move.
const fillAttempts = 16

// Phase is the state of the driver's state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // waiting for the player
	PhasePopping               // removed group disappears layer by layer
	PhaseFalling               // tokens fall into the holes
	PhaseSliding               // columns slide over empty ones
	PhaseGameOver              // no group of two or more is left
	PhaseCleared               // every bubble was popped
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePopping:
		return "popping"
	case PhaseFalling:
		return "falling"
	case PhaseSliding:
		return "sliding"
	case PhaseGameOver:
		return "game_over"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Package-level settings shared by every game created through the registry.
var (
	settingsMu     sync.RWMutex
	activeConfig   = config.DefaultBubbleburstConfig()
	defaultLogger  = log.New(io.Discard)
	registeredDiff = config.AllDifficulties()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.BubbleburstConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	activeConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	defaultLogger = l
}

func settings() (config.BubbleburstConfig, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return activeConfig, defaultLogger
}

// GameID returns the registry ID for a difficulty.
func GameID(d config.DifficultyPreset) string {
	return IDPrefix + string(d)
}

func init() {
	for _, d := range registeredDiff {
		registry.Register(GameID(d), func() registry.Game {
			return New(d)
		})
	}
}

// Game implements registry.Game for one difficulty.
type Game struct {
	difficulty config.DifficultyPreset
	cfg        config.BubbleburstConfig
	preset     config.BoardPreset
	log        *log.Logger

	rng   *rand.Rand
	tick  uint64
	grid  *board.Grid
	tally board.Tally
	phase Phase

	cursor  board.Coord
	hovered board.Group
	hoverOK bool

	play playback

	message      string
	messageTicks int
	tickRate     int

	placement *Placement

	screenW  int
	screenH  int
	layout   layout
	paused   bool
	tooSmall bool
}

// Placement is the leaderboard result reported back by the platform.
type Placement struct {
	Rank    int
	Updated bool
}

// New creates a game for the given difficulty using the current package settings.
func New(d config.DifficultyPreset) *Game {
	cfg, logger := settings()
	return &Game{
		difficulty: d,
		cfg:        cfg,
		log:        logger.With("game", GameID(d)),
	}
}

// SetLogger overrides the logger of this game.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l.With("game", g.ID())
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.difficulty)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Bubbleburst (%s)", g.difficulty.Title())
}

// Difficulty returns the difficulty preset of the game.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.difficulty
}

// Reset deals a new board and clears the score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tally = board.Tally{}
	g.phase = PhaseIdle
	g.play = playback{}
	g.paused = false
	g.placement = nil
	g.message = ""
	g.messageTicks = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	preset, err := g.cfg.Preset(g.difficulty)
	if err != nil {
		g.log.Warn("falling back to default preset", "err", err)
		preset, _ = config.DefaultBubbleburstConfig().Preset(config.DifficultyMedium)
	}
	g.preset = preset

	grid, err := g.deal()
	if err != nil {
		// Only reachable with a config that skipped validation.
		g.log.Error("cannot deal board", "err", err)
		grid, _ = board.New(1, 1)
	}
	g.grid = grid
	g.cursor = board.C(0, g.grid.Height()-1)
	g.refreshHover()

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.log.Debug("new board", "width", g.grid.Width(), "height", g.grid.Height(), "seed", cfg.Seed)
	if !g.grid.HasValidMove() {
		g.finish()
	}
}

// deal builds and fills a board, re-rolling a few times when the first fill
// has no group to pop.
func (g *Game) deal() (*board.Grid, error) {
	dir, err := g.cfg.Compaction()
	if err != nil {
		return nil, err
	}
	palette, err := board.Palette(g.preset.Palette)
	if err != nil {
		return nil, err
	}

	var grid *board.Grid
	for range fillAttempts {
		grid, err = board.New(g.preset.Width, g.preset.Height, board.WithCompaction(dir))
		if err != nil {
			return nil, err
		}
		if err := board.Fill(grid, palette, g.rng); err != nil {
			return nil, err
		}
		if grid.HasValidMove() {
			break
		}
	}
	return grid, nil
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.grid == nil {
		return
	}
	g.layout = computeLayout(g.grid.Width(), g.grid.Height(), w, h)
	g.tooSmall = !g.layout.fits
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.Finished() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseIdle:
		g.handleInput(in)
	case PhasePopping:
		g.stepPopping()
	case PhaseFalling, PhaseSliding:
		g.stepTweens()
	}

	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor, follows the pointer and commits pops.
func (g *Game) handleInput(in core.InputFrame) {
	moved := false
	switch {
	case in.Has(core.ActionUp):
		moved = g.moveCursor(0, 1)
	case in.Has(core.ActionDown):
		moved = g.moveCursor(0, -1)
	case in.Has(core.ActionLeft):
		moved = g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		moved = g.moveCursor(1, 0)
	}

	if in.Pointer != nil {
		if c, ok := g.layout.cellAt(in.Pointer.X, in.Pointer.Y); ok && c != g.cursor {
			g.cursor = c
			moved = true
		}
	}

	if moved {
		g.refreshHover()
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	if in.Has(core.ActionConfirm) {
		g.pop()
	}
}

func (g *Game) moveCursor(dx, dy int) bool {
	next := g.cursor.Add(dx, dy)
	if !g.grid.InBounds(next) {
		return false
	}
	g.cursor = next
	return true
}

// refreshHover recomputes the group under the cursor.
func (g *Game) refreshHover() {
	grp, err := g.grid.FindGroup(g.cursor)
	if err != nil {
		g.hovered = board.Group{}
		g.hoverOK = false
		return
	}
	g.hovered = grp
	g.hoverOK = true
}

// showHint moves the cursor onto the largest group.
func (g *Game) showHint() {
	groups := g.grid.Groups()
	if len(groups) == 0 || !groups[0].Removable() {
		return
	}
	seed, _ := groups[0].Seed()
	g.cursor = seed.Cell
	g.refreshHover()
	g.say(fmt.Sprintf("Largest group: %d bubbles (+%d)", groups[0].Len(), board.ScoreDelta(groups[0].Len())))
}

// pop commits the hovered group: the board is resolved immediately and the
// recorded changes are queued for playback.
func (g *Game) pop() {
	if !g.hoverOK {
		return
	}
	if !g.hovered.Removable() {
		g.say("Cannot pop a single bubble!")
		return
	}

	grp := g.hovered
	before := g.grid.Clone()
	if err := g.grid.RemoveGroup(grp); err != nil {
		g.log.Error("remove group", "err", err)
		g.refreshHover()
		return
	}
	settled := g.grid.Settle()
	delta := g.tally.Record(grp.Len())

	g.log.Debug("group popped",
		"color", grp.Color, "size", grp.Len(), "points", delta,
		"score", g.tally.Score, "remaining", g.grid.TokenCount())

	g.say(fmt.Sprintf("+%d", delta))
	g.hovered = board.Group{}
	g.hoverOK = false
	g.play = newPlayback(before, grp, settled, g.cfg.Presentation)
	g.phase = PhasePopping
}

// stepPopping pops one BFS layer every PopDelayTicks ticks.
func (g *Game) stepPopping() {
	if g.play.advancePop() {
		return
	}
	if g.play.startFalls(g.cfg.Presentation) {
		g.phase = PhaseFalling
		return
	}
	if g.play.startSlides(g.cfg.Presentation) {
		g.phase = PhaseSliding
		return
	}
	g.settle()
}

// stepTweens advances fall or slide tweens.
func (g *Game) stepTweens() {
	if g.play.advanceTweens() {
		return
	}
	if g.phase == PhaseFalling && g.play.startSlides(g.cfg.Presentation) {
		g.phase = PhaseSliding
		return
	}
	g.settle()
}

// settle ends playback and checks for the end of the round.
func (g *Game) settle() {
	g.play = playback{}
	if g.grid.Cleared() || !g.grid.HasValidMove() {
		g.finish()
		return
	}
	g.phase = PhaseIdle
	if !g.grid.InBounds(g.cursor) {
		g.cursor = board.C(0, 0)
	}
	g.refreshHover()
}

// finish ends the round as either cleared or game over.
func (g *Game) finish() {
	if g.tally.Popped >= g.grid.Size() || g.grid.Cleared() {
		g.phase = PhaseCleared
		g.log.Info("board cleared", "score", g.tally.Score, "moves", g.tally.Moves)
		return
	}
	g.phase = PhaseGameOver
	g.log.Info("no moves left", "score", g.tally.Score, "moves", g.tally.Moves, "remaining", g.grid.TokenCount())
}

// say shows a status message for two seconds.
func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = 2 * g.tickRate
}

// SetLeaderboardResult records where the finished round landed on the leaderboard.
func (g *Game) SetLeaderboardResult(rank int, updated bool) {
	g.placement = &Placement{Rank: rank, Updated: updated}
}

// Finished reports whether the round is over.
func (g *Game) Finished() bool {
	return g.phase == PhaseGameOver || g.phase == PhaseCleared
}

// Phase returns the current state-machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Tally returns the running score, moves and popped count.
func (g *Game) Tally() board.Tally {
	return g.tally
}

// Remaining returns the number of bubbles left on the board.
func (g *Game) Remaining() int {
	return g.grid.TokenCount()
}

// RoundResult describes a finished round for score persistence.
func (g *Game) RoundResult() (moves int, cleared bool) {
	return g.tally.Moves, g.phase == PhaseCleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tally.Score,
		GameOver: g.Finished(),
		Paused:   g.paused || g.tooSmall,
	}
}
