package celebration

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// Duration is the wall-clock lifetime of the effect. The animation
// self-terminates after this long regardless of what else happens.
const Duration = 6 * time.Second

// FrameInterval is the tick period driving Step.
const FrameInterval = 50 * time.Millisecond

const defaultPieceCount = 120

// colors matches the classic confetti palette.
var colors = []color.Color{
	lipgloss.Color("#ff5a5f"),
	lipgloss.Color("#ffb703"),
	lipgloss.Color("#03d387"),
	lipgloss.Color("#1b6bff"),
	lipgloss.Color("#9b5de5"),
	lipgloss.Color("#00bbf9"),
}

var glyphs = []rune{'▀', '▄', '■', '●', '◆', '▪'}

// piece is a single falling confetto.
type piece struct {
	x, y   float64
	vx, vy float64
	color  int
	glyph  rune
}

// Field is a confetti particle field sized to the terminal. It shares
// no state with the quiz engine; the summary screen steps it on a
// frame tick and drops it when the effect expires.
type Field struct {
	pieces  []piece
	w, h    int
	rng     *rand.Rand
	started time.Time
}

// New creates a field covering a w-by-h cell area. A nil rng gets a
// time-seeded source.
func New(w, h int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	f := &Field{w: w, h: h, rng: rng, started: time.Now()}
	f.pieces = make([]piece, defaultPieceCount)
	for i := range f.pieces {
		f.pieces[i] = f.spawn()
	}
	return f
}

func (f *Field) spawn() piece {
	return piece{
		x:     f.rng.Float64() * float64(f.w),
		y:     -f.rng.Float64() * float64(f.h) / 2,
		vx:    -0.5 + f.rng.Float64(),
		vy:    0.3 + f.rng.Float64()*0.5,
		color: f.rng.IntN(len(colors)),
		glyph: glyphs[f.rng.IntN(len(glyphs))],
	}
}

// Expired reports whether the effect has outlived its duration.
func (f *Field) Expired() bool {
	return time.Since(f.started) >= Duration
}

// Resize adapts the field to a new terminal size.
func (f *Field) Resize(w, h int) {
	f.w, f.h = w, h
}

// Step advances every piece one frame. Pieces falling past the bottom
// respawn at the top, like the original endless shower.
func (f *Field) Step() {
	for i := range f.pieces {
		p := &f.pieces[i]
		p.x += p.vx
		p.y += p.vy
		if p.y > float64(f.h) {
			p.y = -1
			p.x = f.rng.Float64() * float64(f.w)
		}
		if p.x < 0 {
			p.x += float64(f.w)
		}
		if p.x >= float64(f.w) {
			p.x -= float64(f.w)
		}
	}
}

// Render draws the field as a w-by-h block of lines, confetti overlaid
// on blank space.
func (f *Field) Render() string {
	if f.w <= 0 || f.h <= 0 {
		return ""
	}

	type cell struct {
		glyph rune
		color int
	}
	grid := make(map[[2]int]cell, len(f.pieces))
	for _, p := range f.pieces {
		cx, cy := int(p.x), int(p.y)
		if cx < 0 || cx >= f.w || cy < 0 || cy >= f.h {
			continue
		}
		grid[[2]int{cx, cy}] = cell{glyph: p.glyph, color: p.color}
	}

	var b strings.Builder
	for y := 0; y < f.h; y++ {
		var line strings.Builder
		run := 0
		for x := 0; x < f.w; x++ {
			c, ok := grid[[2]int{x, y}]
			if !ok {
				run++
				continue
			}
			if run > 0 {
				line.WriteString(strings.Repeat(" ", run))
				run = 0
			}
			line.WriteString(lipgloss.NewStyle().Foreground(colors[c.color]).Render(string(c.glyph)))
		}
		b.WriteString(line.String())
		if y < f.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
