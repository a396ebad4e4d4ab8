// Package sprite draws the game's pixel-art: hearts, characters, stars and
// the celebration scene. Everything is expressed as filled rectangles in
// field units against a Plotter.
package sprite

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Plotter fills axis-aligned rectangles.
type Plotter interface {
	Rect(x, y, w, h float64, c colorful.Color)
}

// Faded wraps a Plotter so every rectangle is blended over Background with
// the given opacity.
type Faded struct {
	Plotter    Plotter
	Background colorful.Color
	Alpha      float64
}

// Rect implements Plotter.
func (f Faded) Rect(x, y, w, h float64, c colorful.Color) {
	f.Plotter.Rect(x, y, w, h, Blend(f.Background, c, f.Alpha))
}

// Blend mixes c over bg with opacity alpha, clamped to [0, 1].
func Blend(bg, c colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return bg
	case alpha >= 1:
		return c
	}
	return bg.BlendRgb(c, alpha).Clamped()
}

// Hex parses a "#rrggbb" or "#rgb" color, returning fallback on failure.
func Hex(s string, fallback colorful.Color) colorful.Color {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

// MustHex parses a color literal known to be valid.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("sprite: bad color literal " + s)
	}
	return c
}

// HexAll parses a list of colors, skipping invalid entries.
func HexAll(list []string) []colorful.Color {
	out := make([]colorful.Color, 0, len(list))
	for _, s := range list {
		c, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Fixed palette entries shared by several sprites.
var (
	White      = MustHex("#ffffff")
	Eye        = MustHex("#2c1810")
	Blush      = MustHex("#ff8888")
	Smile      = MustHex("#d4756b")
	PartnerLip = MustHex("#c4756b")
	Nose       = MustHex("#e5b791")
	Ribbon     = MustHex("#ffd700")
	Pin        = MustHex("#ff4a6e")
	HeartPink  = MustHex("#ff4a6e")
	HeartLine  = MustHex("#8b0030")
	GoldLine   = MustHex("#b8860b")
	BrokenGrey = MustHex("#555555")
	GroundTick = MustHex("#2a1a3e")
	Subtitle   = MustHex("#ffb6c8")
)

// grid plots sprite pixels relative to an origin. Offsets and sizes are in
// sprite pixels of side px.
type grid struct {
	p      Plotter
	ox, oy float64
	px     float64
}

func newGrid(p Plotter, x, y, px float64) grid {
	return grid{p: p, ox: math.Floor(x), oy: math.Floor(y), px: px}
}

func (g grid) rect(dx, dy, w, h float64, c colorful.Color) {
	g.p.Rect(g.ox+dx*g.px, g.oy+dy*g.px, w*g.px, h*g.px, c)
}
