package sprite

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HeartGrid is the 8x7 heart bitmap.
var HeartGrid = [7][8]bool{
	{false, true, true, false, false, true, true, false},
	{true, true, true, true, true, true, true, true},
	{true, true, true, true, true, true, true, true},
	{true, true, true, true, true, true, true, true},
	{false, true, true, true, true, true, true, false},
	{false, false, true, true, true, true, false, false},
	{false, false, false, true, true, false, false, false},
}

var brokenLeft = [7][4]bool{
	{false, true, true, false},
	{true, true, true, true},
	{true, true, true, true},
	{true, true, true, false},
	{false, true, true, false},
	{false, false, true, false},
	{},
}

var brokenRight = [7][4]bool{
	{false, true, true, false},
	{true, true, true, true},
	{true, true, true, true},
	{false, true, true, true},
	{false, true, true, false},
	{false, true, false, false},
	{},
}

// DrawHeart draws an outlined heart centered on (cx, cy) with sprite pixels
// of side px. The top-left lobe gets a light highlight.
func DrawHeart(p Plotter, cx, cy, px float64, fill, outline colorful.Color) {
	sx := cx - 4*px
	sy := cy - 3.5*px

	for r, row := range HeartGrid {
		for c, on := range row {
			if on {
				p.Rect(sx+float64(c)*px-1, sy+float64(r)*px-1, px+2, px+2, outline)
			}
		}
	}
	for r, row := range HeartGrid {
		for c, on := range row {
			if on {
				p.Rect(sx+float64(c)*px, sy+float64(r)*px, px, px, fill)
			}
		}
	}

	highlight := Blend(fill, White, 0.2)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if HeartGrid[r][c] {
				p.Rect(sx+float64(c)*px, sy+float64(r)*px, px, px, highlight)
			}
		}
	}
}

// DrawBrokenHeart draws a heart split into two halves with a gap.
func DrawBrokenHeart(p Plotter, cx, cy, px float64, fill colorful.Color) {
	sx := cx - 4*px
	sy := cy - 3.5*px

	for r := range brokenLeft {
		for c := 0; c < 4; c++ {
			if brokenLeft[r][c] {
				p.Rect(sx+float64(c)*px-2, sy+float64(r)*px, px, px, fill)
			}
			if brokenRight[r][c] {
				p.Rect(sx+float64(c+4)*px+2, sy+float64(r)*px, px, px, fill)
			}
		}
	}
}
