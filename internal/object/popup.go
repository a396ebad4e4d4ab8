package object

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

// Popup colors by catch outcome.
var (
	PenaltyPopupColor = colorful.Color{R: 0.533, G: 0.533, B: 0.533}
	GoldPopupColor    = GoldColor
	ScorePopupColor   = colorful.Color{R: 1, G: 0.42, B: 0.541}
)

// Popup is a floating score label that rises and fades.
type Popup struct {
	X, Y  float64
	Text  string
	Color colorful.Color
	Life  float64
}

// NewPopup creates a popup at full life.
func NewPopup(x, y float64, text string, c colorful.Color) *Popup {
	return &Popup{X: x, Y: y, Text: text, Color: c, Life: 1}
}

// Update moves the popup up and decays life.
func (p *Popup) Update(_ UpdateContext) bool {
	p.Y -= config.PopupRise
	p.Life -= config.PopupDecay
	return p.Life <= 0
}

// Draw renders the label.
func (p *Popup) Draw(r Renderer) {
	r.Text(p.X, p.Y, p.Text, p.Color, p.Life)
}
