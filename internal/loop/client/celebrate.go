package client

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/sprite"
)

// updateCelebrateState advances the hug animation.
func (c *Client) updateCelebrateState() {
	c.state.celebrateFrame++
	skip := c.state.celebrateFrame > config.HugTextDelay && c.confirmed()
	if skip || c.state.celebrateFrame >= config.HugFrames+config.HugHoldFrames {
		c.state.Screen = ScreenWin
	}
}

// drawCelebrateText draws the fading title lines of the hug scene.
func (c *Client) drawCelebrateText() {
	frame := c.state.celebrateFrame
	if frame <= config.HugTextDelay {
		return
	}
	alpha := min(float64(frame-config.HugTextDelay)*config.HugTextFadeRate, 1)
	cfg := c.cfg
	w, h := c.renderer.field.Width, c.renderer.field.Height

	lines := []struct {
		text  string
		color colorful.Color
		dy    float64
	}{
		{cfg.Messages.HugTitleText(cfg.Player.Name), sprite.Pin, 0},
		{cfg.Messages.HugSubtitle, sprite.Subtitle, 35},
		{"Happy Valentine's Day!", sprite.Subtitle, 60},
	}
	for _, l := range lines {
		c.renderer.Text(w/2, h*0.78+l.dy, l.text, l.color, alpha)
	}
	c.drawOverlayTexts()
}

// hug draws the celebration scene at the given frame. charAlpha fades the
// characters in over the background.
func (r *sceneRenderer) hug(frame int, charAlpha float64) {
	r.texts = r.texts[:0]
	r.sky(frame)
	w, h := r.field.Width, r.field.Height
	r.canvas.Rect(0, h*0.7, w, h*0.3, r.ground)

	sprite.DrawHug(sprite.Faded{Plotter: r.canvas, Background: r.bg, Alpha: charAlpha},
		w, h*0.65, frame, r.player, r.partner)

	if frame > config.HugHeartsDelay {
		for i := 0; i < 3; i++ {
			hx, hy, a := sprite.FloatingHeart(i, frame, w, h)
			fill := sprite.Blend(r.bg, sprite.HeartPink, a)
			line := sprite.Blend(r.bg, sprite.HeartLine, a)
			sprite.DrawHeart(r.canvas, hx, hy, math.Max(1, math.Floor(config.BasePixel*0.8)), fill, line)
		}
	}
}
