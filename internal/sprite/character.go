package sprite

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

// Character is a resolved character palette.
type Character struct {
	Hair            hairColors
	Skin            colorful.Color
	Outfit          colorful.Color
	OutfitHighlight colorful.Color
	Accent          colorful.Color
	Shirt           colorful.Color
	Trouser         colorful.Color
	Shoe            colorful.Color
	Style           HairStyle
}

// NewCharacter resolves a configured character. Unparseable colors fall back
// to fallback's values.
func NewCharacter(c, fallback config.Character) Character {
	col := func(s, fb string) colorful.Color {
		return Hex(s, Hex(fb, White))
	}
	hair := func(i int) colorful.Color {
		var s, fb string
		if i < len(c.HairColors) {
			s = c.HairColors[i]
		}
		if i < len(fallback.HairColors) {
			fb = fallback.HairColors[i]
		}
		return col(s, fb)
	}
	style, _ := ParseHairStyle(c.HairStyle)
	return Character{
		Hair:            hairColors{dark: hair(0), main: hair(1), light: hair(2)},
		Skin:            col(c.SkinColor, fallback.SkinColor),
		Outfit:          col(c.OutfitColor, fallback.OutfitColor),
		OutfitHighlight: col(c.OutfitHighlight, fallback.OutfitHighlight),
		Accent:          col(c.AccentColor, fallback.AccentColor),
		Shirt:           col(c.ShirtColor, fallback.ShirtColor),
		Trouser:         col(c.TrouserColor, fallback.TrouserColor),
		Shoe:            col(c.ShoeColor, fallback.ShoeColor),
		Style:           style,
	}
}

// PlayerCharacter resolves the player character of cfg.
func PlayerCharacter(cfg config.Config) Character {
	return NewCharacter(cfg.PlayerCharacter, config.Default().PlayerCharacter)
}

// PartnerCharacter resolves the partner character of cfg.
func PartnerCharacter(cfg config.Config) Character {
	return NewCharacter(cfg.PartnerCharacter, config.Default().PartnerCharacter)
}

// DrawPlayer draws the player character with its waist at (x, y) and sprite
// pixels of side px.
func DrawPlayer(p Plotter, x, y, px float64, ch Character) {
	g := newGrid(p, x, y, px)
	hair := hairFor(playerHair, ch.Style)

	hair.back(g, ch.Hair)
	g.rect(-4, -8, 8, 7, ch.Skin)
	hair.front(g, ch.Hair)

	// Eyes
	g.rect(-3, -5, 2, 2, Eye)
	g.rect(1, -5, 2, 2, Eye)
	g.rect(-3, -5, 1, 1, White)
	g.rect(1, -5, 1, 1, White)
	// Blush
	g.rect(-4, -3, 2, 1, Blush)
	g.rect(2, -3, 2, 1, Blush)
	g.rect(-1, -2, 2, 1, Smile)

	// Dress
	g.rect(-3, -1, 6, 1, ch.Outfit)
	g.rect(-4, 0, 8, 5, ch.Outfit)
	g.rect(-5, 3, 10, 2, ch.Outfit)
	g.rect(-2, 0, 4, 1, ch.OutfitHighlight)
	g.rect(-4, 1, 8, 1, ch.Accent)

	// Raised arms
	for i := 1.0; i <= 3; i++ {
		g.rect(-(5 + i), -i, 2, 1, ch.Skin)
		g.rect(4+i-1, -i, 2, 1, ch.Skin)
	}

	g.rect(-3, 5, 2, 2, ch.Skin)
	g.rect(1, 5, 2, 2, ch.Skin)
	g.rect(-3, 7, 2, 1, ch.Shoe)
	g.rect(1, 7, 2, 1, ch.Shoe)
}

// DrawPartner draws the partner character with its waist at (x, y).
func DrawPartner(p Plotter, x, y, px float64, ch Character) {
	g := newGrid(p, x, y, px)
	hair := hairFor(partnerHair, ch.Style)

	hair.back(g, ch.Hair)
	g.rect(-4, -9, 8, 8, ch.Skin)
	g.rect(-3, -1, 6, 1, ch.Skin)
	hair.front(g, ch.Hair)

	// Eyes and brows
	g.rect(-3, -6, 2, 1, Eye)
	g.rect(1, -6, 2, 1, Eye)
	g.rect(-3, -7, 3, 1, ch.Hair.dark)
	g.rect(1, -7, 3, 1, ch.Hair.dark)
	g.rect(-3, -6, 1, 1, White)
	g.rect(1, -6, 1, 1, White)
	g.rect(0, -4, 1, 1, Nose)
	g.rect(-1, -2, 3, 1, PartnerLip)

	// Jacket
	g.rect(-4, 0, 8, 6, ch.Outfit)
	g.rect(-3, 0, 6, 1, ch.OutfitHighlight)
	g.rect(-1, 0, 2, 3, ch.Shirt)

	g.rect(-6, 0, 2, 5, ch.Outfit)
	g.rect(4, 0, 2, 5, ch.Outfit)
	g.rect(-6, 5, 2, 1, ch.Skin)
	g.rect(4, 5, 2, 1, ch.Skin)

	g.rect(-3, 6, 2, 3, ch.Trouser)
	g.rect(1, 6, 2, 3, ch.Trouser)
	g.rect(-3, 9, 2, 1, ch.Shoe)
	g.rect(1, 9, 2, 1, ch.Shoe)
}
