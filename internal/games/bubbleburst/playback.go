package bubbleburst

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/bubbleburst/internal/board"
	"github.com/vovakirdan/bubbleburst/internal/config"
)

// sprite is a bubble as drawn during playback, at a fractional board position.
type sprite struct {
	token  board.TokenID
	color  board.Color
	x, y   float32
	doomed bool // member of the group being popped
}

// motion drives one sprite coordinate with a tween.
type motion struct {
	sprite   int
	vertical bool
	tween    *gween.Tween
	done     bool
}

// playback replays a committed pop: the removed group vanishes one BFS
// layer at a time, then the recorded falls and slides are tweened.
// The board itself already holds the final state.
type playback struct {
	active  bool
	sprites []sprite
	byToken map[board.TokenID]int

	layers   [][]board.Member
	popped   int // layers already removed
	popDelay int
	popTicks int

	settled board.Settlement
	motions []motion
}

func newPlayback(before *board.Grid, grp board.Group, settled board.Settlement, p config.PresentationConfig) playback {
	pb := playback{
		active:   true,
		byToken:  make(map[board.TokenID]int, before.TokenCount()),
		layers:   grp.Layers(),
		popDelay: p.PopDelayTicks,
		settled:  settled,
	}

	doomed := make(map[board.TokenID]bool, grp.Len())
	for _, m := range grp.Members {
		doomed[m.Token] = true
	}

	for y := 0; y < before.Height(); y++ {
		for x := 0; x < before.Width(); x++ {
			t, ok := before.TokenAt(board.C(x, y))
			if !ok {
				continue
			}
			pb.byToken[t.ID] = len(pb.sprites)
			pb.sprites = append(pb.sprites, sprite{
				token:  t.ID,
				color:  t.Color,
				x:      float32(x),
				y:      float32(y),
				doomed: doomed[t.ID],
			})
		}
	}
	return pb
}

// advancePop removes the next layer when its time has come. The seed layer
// goes on the first tick. Returns false once every layer is gone.
func (pb *playback) advancePop() bool {
	if pb.popped >= len(pb.layers) {
		return false
	}
	if pb.popTicks >= pb.popped*pb.popDelay {
		for _, m := range pb.layers[pb.popped] {
			pb.hide(m.Token)
		}
		pb.popped++
	}
	pb.popTicks++
	return true
}

func (pb *playback) hide(id board.TokenID) {
	i, ok := pb.byToken[id]
	if !ok {
		return
	}
	pb.sprites[i].color = board.ColorNone
	delete(pb.byToken, id)
}

// startFalls queues a vertical tween per fall move. Returns false when nothing falls.
func (pb *playback) startFalls(p config.PresentationConfig) bool {
	return pb.start(pb.settled.Falls, true, p.FallTicks, p.Easing)
}

// startSlides queues a horizontal tween per slide move. Returns false when nothing slides.
func (pb *playback) startSlides(p config.PresentationConfig) bool {
	return pb.start(pb.settled.Slides, false, p.SlideTicks, p.Easing)
}

func (pb *playback) start(moves []board.Move, vertical bool, ticks int, easing string) bool {
	pb.motions = pb.motions[:0]
	for _, mv := range moves {
		i, ok := pb.byToken[mv.Token]
		if !ok {
			continue
		}
		begin, end := float32(mv.From.X), float32(mv.To.X)
		if vertical {
			begin, end = float32(mv.From.Y), float32(mv.To.Y)
		}
		pb.motions = append(pb.motions, motion{
			sprite:   i,
			vertical: vertical,
			tween:    gween.New(begin, end, float32(ticks), easingFunc(easing)),
		})
	}
	return len(pb.motions) > 0
}

// advanceTweens moves every sprite one tick along its tween.
// Returns false once all tweens have finished.
func (pb *playback) advanceTweens() bool {
	running := false
	for i := range pb.motions {
		m := &pb.motions[i]
		if m.done {
			continue
		}
		v, finished := m.tween.Update(1)
		s := &pb.sprites[m.sprite]
		if m.vertical {
			s.y = v
		} else {
			s.x = v
		}
		m.done = finished
		running = running || !finished
	}
	return running
}

// visible returns the sprites still on screen.
func (pb *playback) visible() []sprite {
	out := make([]sprite, 0, len(pb.byToken))
	for _, s := range pb.sprites {
		if s.color != board.ColorNone {
			out = append(out, s)
		}
	}
	return out
}

// easingFunc maps a config easing name to a tween function.
func easingFunc(name string) ease.TweenFunc {
	switch name {
	case "linear":
		return ease.Linear
	case "out_cubic":
		return ease.OutCubic
	case "out_bounce":
		return ease.OutBounce
	default:
		return ease.OutQuad
	}
}
