package object

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

// HeartKind identifies the scoring behavior of a heart.
type HeartKind int

const (
	HeartNormal HeartKind = iota
	HeartBroken
	HeartGold
)

func (k HeartKind) String() string {
	switch k {
	case HeartNormal:
		return "normal"
	case HeartBroken:
		return "broken"
	case HeartGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Heart is a falling collectible. Kind is fixed at spawn.
type Heart struct {
	X, Y   float64
	Size   float64
	Speed  float64 // Field units per frame
	Wobble float64 // Horizontal drift phase
	Color  colorful.Color
	Kind   HeartKind
}

// Update moves the heart down one frame. A heart that left the bottom of the
// field is reported for removal; that is a miss, not a catch.
func (h *Heart) Update(ctx UpdateContext) bool {
	h.Y += h.Speed
	h.X += math.Sin(h.Wobble+h.Y*config.WobbleFrequency) * config.WobbleAmplitude
	return h.Missed(ctx.Field)
}

// Missed reports whether the heart has fallen past the bottom margin.
func (h *Heart) Missed(f Field) bool {
	return h.Y > f.Height+config.MissMargin
}

// Draw renders the heart sprite.
func (h *Heart) Draw(r Renderer) {
	r.Heart(h.X, h.Y, h.Size, h.Color, h.Kind)
}
