package sprite

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HairStyle identifies a hair layout.
type HairStyle int

const (
	HairShort HairStyle = iota
	HairLong
	HairPonytail
	HairBun
	HairCurly
	HairPigtails
	HairBuzz
	HairBald
	HairUndercut
)

var hairNames = map[HairStyle]string{
	HairShort:    "short",
	HairLong:     "long",
	HairPonytail: "ponytail",
	HairBun:      "bun",
	HairCurly:    "curly",
	HairPigtails: "pigtails",
	HairBuzz:     "buzz",
	HairBald:     "bald",
	HairUndercut: "undercut",
}

func (s HairStyle) String() string {
	if name, ok := hairNames[s]; ok {
		return name
	}
	return "short"
}

// ParseHairStyle maps a style name to its HairStyle. Unknown names map to
// HairShort and ok is false.
func ParseHairStyle(name string) (style HairStyle, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range hairNames {
		if n == name {
			return s, true
		}
	}
	return HairShort, false
}

// hairColors is the dark, main and highlight shade of one head of hair.
type hairColors struct {
	dark, main, light colorful.Color
}

type hairLayer func(g grid, h hairColors)

// hairLayers draws hair in two passes: back before the face, front after it.
type hairLayers struct {
	back  hairLayer
	front hairLayer
}

func noHair(grid, hairColors) {}

var playerHair = map[HairStyle]hairLayers{
	HairLong: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -11, 10, 3, h.dark)
			g.rect(-6, -9, 12, 6, h.dark)
			g.rect(-6, -3, 3, 8, h.dark)
			g.rect(3, -3, 3, 8, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-5, -10, 10, 3, h.main)
			g.rect(-5, -8, 2, 2, h.main)
			g.rect(3, -8, 2, 2, h.main)
			g.rect(-3, -11, 4, 1, h.light)
		},
	},
	HairShort: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -11, 10, 3, h.dark)
			g.rect(-6, -9, 12, 5, h.dark)
			g.rect(-6, -4, 3, 3, h.dark)
			g.rect(3, -4, 3, 3, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-5, -10, 10, 3, h.main)
			g.rect(-5, -8, 2, 1, h.main)
			g.rect(3, -8, 2, 1, h.main)
			g.rect(-2, -11, 3, 1, h.light)
		},
	},
	HairPonytail: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -11, 10, 3, h.dark)
			g.rect(-5, -9, 10, 3, h.dark)
			g.rect(2, -12, 2, 4, h.dark)
			g.rect(4, -14, 2, 3, h.dark)
			g.rect(5, -12, 2, 5, h.dark)
			g.rect(4, -7, 2, 2, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-5, -10, 10, 2, h.main)
			g.rect(-4, -8, 2, 1, h.main)
			g.rect(2, -8, 2, 1, h.main)
			g.rect(2, -12, 2, 1, Ribbon)
			g.rect(-2, -11, 3, 1, h.light)
		},
	},
	HairBun: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -11, 10, 3, h.dark)
			g.rect(-5, -9, 10, 3, h.dark)
			g.rect(-5, -6, 2, 2, h.dark)
			g.rect(3, -6, 2, 2, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-2, -14, 4, 4, h.main)
			g.rect(-3, -13, 6, 2, h.main)
			g.rect(-1, -15, 2, 2, h.main)
			g.rect(-1, -14, 2, 1, h.light)
			g.rect(-5, -10, 5, 2, h.main)
			g.rect(1, -10, 4, 2, h.main)
			g.rect(-3, -11, 3, 1, h.light)
			g.rect(0, -12, 2, 1, Pin)
		},
	},
	HairCurly: {
		back: func(g grid, h hairColors) {
			g.rect(-6, -11, 12, 3, h.dark)
			g.rect(-7, -9, 14, 6, h.dark)
			g.rect(-7, -3, 3, 6, h.dark)
			g.rect(4, -3, 3, 6, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-6, -10, 12, 3, h.main)
			g.rect(-6, -8, 2, 2, h.main)
			g.rect(-3, -9, 2, 2, h.main)
			g.rect(0, -9, 2, 2, h.main)
			g.rect(3, -9, 2, 2, h.main)
			g.rect(4, -8, 2, 2, h.main)
			g.rect(-4, -11, 4, 1, h.light)
			g.rect(1, -11, 3, 1, h.light)
		},
	},
	HairPigtails: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -11, 10, 3, h.dark)
			g.rect(-5, -9, 10, 4, h.dark)
			g.rect(-8, -7, 3, 8, h.dark)
			g.rect(-7, 1, 2, 2, h.dark)
			g.rect(5, -7, 3, 8, h.dark)
			g.rect(5, 1, 2, 2, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-5, -10, 10, 2, h.main)
			g.rect(-4, -8, 2, 1, h.main)
			g.rect(2, -8, 2, 1, h.main)
			g.rect(-7, -7, 2, 1, Ribbon)
			g.rect(5, -7, 2, 1, Ribbon)
			g.rect(-2, -11, 3, 1, h.light)
		},
	},
}

var partnerHair = map[HairStyle]hairLayers{
	HairLong: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -12, 10, 3, h.dark)
			g.rect(-6, -10, 12, 5, h.dark)
			g.rect(-6, -5, 3, 6, h.dark)
			g.rect(3, -5, 3, 6, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-5, -11, 10, 3, h.main)
			g.rect(-5, -9, 3, 2, h.main)
			g.rect(2, -9, 3, 1, h.main)
			g.rect(-3, -9, 2, 1, h.main)
			g.rect(-2, -12, 3, 1, h.light)
			g.rect(1, -11, 2, 1, h.light)
		},
	},
	HairShort: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -12, 10, 3, h.dark)
			g.rect(-5, -10, 10, 3, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-5, -11, 10, 3, h.main)
			g.rect(-4, -9, 5, 1, h.main)
			g.rect(1, -9, 3, 1, h.main)
			g.rect(-3, -12, 5, 1, h.light)
		},
	},
	HairBuzz: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -12, 10, 2, h.dark)
			g.rect(-5, -11, 2, 1, h.dark)
			g.rect(3, -11, 2, 1, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-4, -12, 8, 2, h.main)
			g.rect(-4, -11, 2, 1, h.main)
			g.rect(2, -11, 2, 1, h.main)
			g.rect(-3, -12, 2, 1, h.light)
			g.rect(1, -12, 2, 1, h.light)
		},
	},
	HairCurly: {
		back: func(g grid, h hairColors) {
			g.rect(-6, -12, 12, 3, h.dark)
			g.rect(-7, -10, 14, 5, h.dark)
			g.rect(-6, -5, 3, 4, h.dark)
			g.rect(3, -5, 3, 4, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-6, -11, 12, 3, h.main)
			g.rect(-6, -9, 2, 2, h.main)
			g.rect(-3, -10, 2, 2, h.main)
			g.rect(0, -10, 2, 2, h.main)
			g.rect(3, -10, 2, 2, h.main)
			g.rect(4, -9, 2, 2, h.main)
			g.rect(-4, -12, 4, 1, h.light)
			g.rect(1, -12, 3, 1, h.light)
		},
	},
	HairBald: {back: noHair, front: noHair},
	HairUndercut: {
		back: func(g grid, h hairColors) {
			g.rect(-5, -12, 10, 2, h.dark)
			g.rect(-5, -11, 2, 3, h.dark)
			g.rect(3, -11, 2, 3, h.dark)
		},
		front: func(g grid, h hairColors) {
			g.rect(-4, -13, 8, 3, h.main)
			g.rect(-3, -11, 6, 2, h.main)
			g.rect(2, -10, 3, 1, h.main)
			g.rect(-4, -13, 4, 1, h.light)
			g.rect(-5, -10, 2, 1, h.dark)
			g.rect(3, -10, 2, 1, h.dark)
		},
	},
}

// hairFor returns the layers for a style, falling back to short hair when
// the table has no entry for it.
func hairFor(table map[HairStyle]hairLayers, s HairStyle) hairLayers {
	if l, ok := table[s]; ok {
		return l
	}
	return table[HairShort]
}

// PlayerHairStyles lists the styles offered for the player character.
func PlayerHairStyles() []HairStyle {
	return []HairStyle{HairLong, HairShort, HairPonytail, HairBun, HairCurly, HairPigtails}
}

// PartnerHairStyles lists the styles offered for the partner character.
func PartnerHairStyles() []HairStyle {
	return []HairStyle{HairLong, HairShort, HairBuzz, HairCurly, HairBald, HairUndercut}
}
