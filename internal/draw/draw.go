package draw

import (
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// RGB is a 24-bit color packed as 0xRRGGBB.
type RGB uint32

// Pack converts a color to its packed 24-bit form.
func Pack(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Components returns the red, green and blue channels.
func (c RGB) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Color converts back to a colorful.Color.
func (c RGB) Color() colorful.Color {
	r, g, b := c.Components()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// appendSGR appends a 24-bit foreground (fg=true) or background SGR sequence.
func appendSGR(buf []byte, c RGB, fg bool) []byte {
	r, g, b := c.Components()
	if fg {
		buf = append(buf, "\033[38;2;"...)
	} else {
		buf = append(buf, "\033[48;2;"...)
	}
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, 'm')
}
