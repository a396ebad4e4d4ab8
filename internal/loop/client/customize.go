package client

import (
	"strings"

	"github.com/tomz197/pixellove/internal/sprite"
)

// Customize screen rows.
const (
	custPlayerHair = iota
	custPlayerOutfit
	custPartnerHair
	custPartnerOutfit
	custMusic
	custStart
	custRows
)

// outfitPalette is the set of outfit colors the customize screen cycles.
var outfitPalette = []string{
	"#ff4a6e", "#e84393", "#a29bfe", "#6c5ce7",
	"#0984e3", "#00b894", "#fdcb6e", "#e17055",
	"#222222", "#ffffff",
}

type customizeState struct {
	row int
}

// updateCustomizeState handles the customize screen.
func (c *Client) updateCustomizeState() {
	in := c.state.Input
	cs := &c.state.customize

	switch {
	case in.Tap.Up:
		cs.row = (cs.row + custRows - 1) % custRows
	case in.Tap.Down:
		cs.row = (cs.row + 1) % custRows
	case in.Tap.Left:
		c.changeCustomization(cs.row, -1)
	case in.Tap.Right:
		c.changeCustomization(cs.row, 1)
	case in.Tap.Enter || in.Tap.Space:
		if cs.row == custMusic {
			c.changeCustomization(cs.row, 1)
			return
		}
		c.finishCustomize()
	}
}

// changeCustomization steps the value of row by step.
func (c *Client) changeCustomization(row, step int) {
	custom := &c.custom
	switch row {
	case custPlayerHair:
		custom.PlayerCharacter.HairStyle = cycleHair(sprite.PlayerHairStyles(), custom.PlayerCharacter.HairStyle, step)
	case custPartnerHair:
		custom.PartnerCharacter.HairStyle = cycleHair(sprite.PartnerHairStyles(), custom.PartnerCharacter.HairStyle, step)
	case custPlayerOutfit:
		custom.PlayerCharacter.OutfitColor, custom.PlayerCharacter.OutfitHighlight =
			cycleOutfit(custom.PlayerCharacter.OutfitColor, step)
	case custPartnerOutfit:
		custom.PartnerCharacter.OutfitColor, custom.PartnerCharacter.OutfitHighlight =
			cycleOutfit(custom.PartnerCharacter.OutfitColor, step)
	case custMusic:
		if c.music == nil {
			custom.MusicEnabled = !custom.MusicEnabled
		} else {
			custom.MusicEnabled = c.music.Toggle()
		}
		return
	default:
		return
	}
	c.applyCustomization()
}

// finishCustomize saves the customization and moves on to the intro.
func (c *Client) finishCustomize() {
	if err := c.store.Save(c.custom); err != nil {
		c.logger.Warn("Failed to save customization", "err", err)
	}
	c.newSession()
	c.state.Screen = ScreenIntro
}

// cycleHair returns the name of the style step places away from current in
// styles. Unknown names start from the first style.
func cycleHair(styles []sprite.HairStyle, current string, step int) string {
	if len(styles) == 0 {
		return current
	}
	idx := -1
	if cur, ok := sprite.ParseHairStyle(current); ok {
		for i, s := range styles {
			if s == cur {
				idx = i
				break
			}
		}
	}
	return styles[stepIndex(idx, step, len(styles))].String()
}

// cycleOutfit returns the next outfit color and a lighter highlight for it.
func cycleOutfit(current string, step int) (color, highlight string) {
	idx := -1
	for i, c := range outfitPalette {
		if strings.EqualFold(c, current) {
			idx = i
			break
		}
	}
	color = outfitPalette[stepIndex(idx, step, len(outfitPalette))]
	highlight = sprite.Blend(sprite.MustHex(color), sprite.White, 0.25).Hex()
	return color, highlight
}

// stepIndex moves idx by step around a ring of n entries. A negative idx
// means no current entry.
func stepIndex(idx, step, n int) int {
	if idx < 0 {
		if step < 0 {
			return n - 1
		}
		return 0
	}
	return ((idx+step)%n + n) % n
}
