package sprite

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

// Star is one twinkling background dot. X and Y are taken modulo the field
// size when drawn.
type Star struct {
	X, Y  float64
	Blink float64
}

// BuildStars scatters count stars.
func BuildStars(rng *rand.Rand, count int) []Star {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * 2000,
			Y:     rng.Float64() * 2000,
			Blink: rng.Float64() * 2 * math.Pi,
		}
	}
	return stars
}

// DrawStars draws stars over bg; t is the time in seconds driving the twinkle.
func DrawStars(p Plotter, w, h float64, stars []Star, t float64, bg colorful.Color) {
	for _, s := range stars {
		a := 0.3 + 0.5*math.Sin(t+s.Blink)
		if a <= 0 {
			continue
		}
		p.Rect(math.Mod(s.X, w), math.Mod(s.Y, h), config.BasePixel, config.BasePixel, Blend(bg, White, a))
	}
}

// DrawGround draws the ground strip along the bottom of a w by h field.
func DrawGround(p Plotter, w, h float64, ground colorful.Color) {
	p.Rect(0, h-15, w, 15, ground)
	for x := 0.0; x < w; x += config.BasePixel * 4 {
		p.Rect(x, h-15, config.BasePixel*2, config.BasePixel, GroundTick)
	}
}

// DrawHug draws the two characters embracing, centered horizontally in a
// field of width w with their waists near y, bobbing with frame.
func DrawHug(p Plotter, w, y float64, frame int, player, partner Character) {
	px := math.Floor(config.BasePixel * 1.8)
	cx := w / 2
	cy := y + 20
	bob := math.Sin(float64(frame)*0.05) * 2

	// Partner on the left, facing right.
	m := newGrid(p, cx-18, cy+bob, px)
	mh := hairFor(partnerHair, partner.Style)
	mh.back(m, partner.Hair)
	m.rect(-4, -9, 8, 8, partner.Skin)
	m.rect(-3, -1, 6, 1, partner.Skin)
	mh.front(m, partner.Hair)
	m.rect(-3, -5, 2, 1, Eye)
	m.rect(1, -5, 2, 1, Eye)
	m.rect(-3, -7, 3, 1, partner.Hair.dark)
	m.rect(1, -7, 3, 1, partner.Hair.dark)
	m.rect(-2, -2, 4, 1, PartnerLip)
	m.rect(-1, -1, 2, 1, PartnerLip)
	m.rect(-4, 0, 8, 6, partner.Outfit)
	m.rect(-1, 0, 2, 3, partner.Shirt)
	m.rect(4, 0, 2, 5, partner.Outfit)
	m.rect(4, 5, 2, 1, partner.Skin)
	m.rect(-3, 6, 2, 3, partner.Trouser)
	m.rect(1, 6, 2, 3, partner.Trouser)
	m.rect(-3, 9, 2, 1, partner.Shoe)
	m.rect(1, 9, 2, 1, partner.Shoe)

	// Player on the right, eyes closed.
	a := newGrid(p, cx+18, cy+bob, px)
	ah := hairFor(playerHair, player.Style)
	ah.back(a, player.Hair)
	a.rect(-4, -8, 8, 7, player.Skin)
	ah.front(a, player.Hair)
	a.rect(-3, -5, 2, 1, Eye)
	a.rect(1, -5, 2, 1, Eye)
	a.rect(-4, -3, 2, 1, Blush)
	a.rect(2, -3, 2, 1, Blush)
	a.rect(-1, -2, 3, 1, Smile)
	a.rect(0, -1, 1, 1, Smile)
	a.rect(-3, -1, 6, 1, player.Outfit)
	a.rect(-4, 0, 8, 5, player.Outfit)
	a.rect(-5, 3, 10, 2, player.Outfit)
	a.rect(-2, 0, 4, 1, player.OutfitHighlight)
	a.rect(-4, 1, 8, 1, player.Accent)
	a.rect(-6, 0, 2, 5, player.Skin)
	a.rect(-3, 5, 2, 2, player.Skin)
	a.rect(1, 5, 2, 2, player.Skin)
	a.rect(-3, 7, 2, 1, player.Shoe)
	a.rect(1, 7, 2, 1, player.Shoe)
	// Partner's arm around the player's back.
	a.rect(-4, 1, 2, 3, partner.Outfit)
	a.rect(-4, 4, 2, 1, partner.Skin)

	hy := cy - 70 + math.Sin(float64(frame)*0.08)*8
	DrawHeart(p, cx, hy, math.Floor(config.BasePixel*1.5), HeartPink, HeartLine)
}

// FloatingHeart returns the position and opacity of the i-th decorative
// heart of the celebration at the given frame.
func FloatingHeart(i, frame int, w, h float64) (x, y, alpha float64) {
	f := float64(frame)
	fi := float64(i)
	x = w * (0.2 + 0.6*math.Sin(f*0.01+fi*2.1))
	y = h*0.2 - math.Sin(f*0.04+fi*1.5)*30 - fi*25
	alpha = 0.5 + 0.3*math.Sin(f*0.06+fi)
	return x, y, alpha
}
