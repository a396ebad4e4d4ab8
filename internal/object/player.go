package object

import (
	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/physics"
)

// Player is the catcher at the bottom of the field. Input only moves TargetX;
// X follows it with exponential smoothing.
type Player struct {
	X       float64
	TargetX float64
	BaseY   float64 // Sprite base
}

// NewPlayer creates a player centered in the field.
func NewPlayer(f Field) *Player {
	return &Player{
		X:       f.Width / 2,
		TargetX: f.Width / 2,
		BaseY:   f.Height - config.PlayerBaseOffset,
	}
}

// Update closes a fixed fraction of the gap to the target.
func (p *Player) Update(_ UpdateContext) bool {
	p.X = physics.Approach(p.X, p.TargetX, config.PlayerSmoothing)
	return false
}

// Anchor returns the catch anchor point.
func (p *Player) Anchor() (float64, float64) {
	return p.X, p.BaseY - config.CatchAnchorOffset
}

// Catches reports whether the heart is inside the player's square hit box.
func (p *Player) Catches(h *Heart) bool {
	ax, ay := p.Anchor()
	return physics.WithinBox(h.X, h.Y, ax, ay, config.CatchHalfExtent)
}

// Draw renders the player character.
func (p *Player) Draw(r Renderer) {
	r.Player(p.X, p.BaseY)
}
