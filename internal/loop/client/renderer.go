package client

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/draw"
	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/object"
	"github.com/tomz197/pixellove/internal/sprite"
)

// overlayText is a label queued during a draw pass and written over the
// canvas after it has been rendered.
type overlayText struct {
	x, y  float64
	text  string
	color colorful.Color
	alpha float64
}

// sceneRenderer draws game objects onto a canvas with pixel-art sprites.
type sceneRenderer struct {
	canvas  *draw.Canvas
	field   object.Field
	bg      colorful.Color
	ground  colorful.Color
	stars   []sprite.Star
	player  sprite.Character
	partner sprite.Character
	texts   []overlayText
}

var _ object.Renderer = (*sceneRenderer)(nil)

func newSceneRenderer(canvas *draw.Canvas, cfg config.Config, rng *rand.Rand) *sceneRenderer {
	r := &sceneRenderer{
		canvas: canvas,
		stars:  sprite.BuildStars(rng, cfg.Theme.StarCount),
	}
	r.configure(cfg)
	return r
}

// configure picks up colors and characters from cfg.
func (r *sceneRenderer) configure(cfg config.Config) {
	r.field = object.Field{Width: cfg.Gameplay.FieldWidth, Height: cfg.Gameplay.FieldHeight}
	r.bg = sprite.Hex(cfg.Theme.CanvasBackground, sprite.MustHex("#0f0a18"))
	r.ground = sprite.Hex(cfg.Theme.GroundColor, sprite.MustHex("#1a0a2e"))
	r.player = sprite.PlayerCharacter(cfg)
	r.partner = sprite.PartnerCharacter(cfg)
}

// Background clears the canvas and queued texts, then draws the sky and
// the ground strip.
func (r *sceneRenderer) Background(frame int) {
	r.texts = r.texts[:0]
	r.sky(frame)
	sprite.DrawGround(r.canvas, r.field.Width, r.field.Height, r.ground)
}

func (r *sceneRenderer) sky(frame int) {
	r.canvas.Fill(r.bg)
	t := float64(frame) / config.TargetFPS
	sprite.DrawStars(r.canvas, r.field.Width, r.field.Height, r.stars, t, r.bg)
}

func (r *sceneRenderer) Heart(x, y, size float64, c colorful.Color, kind object.HeartKind) {
	switch kind {
	case object.HeartBroken:
		sprite.DrawBrokenHeart(r.canvas, x, y, size, c)
	case object.HeartGold:
		sprite.DrawHeart(r.canvas, x, y, size, c, sprite.GoldLine)
	default:
		sprite.DrawHeart(r.canvas, x, y, size, c, sprite.HeartLine)
	}
}

func (r *sceneRenderer) Pixel(x, y, size float64, c colorful.Color, alpha float64) {
	under := r.canvas.At(x, y).Color()
	r.canvas.Rect(x, y, size, size, sprite.Blend(under, c, alpha))
}

func (r *sceneRenderer) Text(x, y float64, text string, c colorful.Color, alpha float64) {
	r.texts = append(r.texts, overlayText{x: x, y: y, text: text, color: c, alpha: alpha})
}

func (r *sceneRenderer) Player(x, y float64) {
	sprite.DrawPlayer(r.canvas, x, y, config.BasePixel, r.player)
}

// preview draws both characters standing side by side.
func (r *sceneRenderer) preview(frame int) {
	r.Background(frame)
	w, h := r.field.Width, r.field.Height
	bob := math.Round(math.Sin(float64(frame)*0.08) * 2)
	px := math.Floor(config.BasePixel * 1.5)
	sprite.DrawPlayer(r.canvas, w/2-70, h-75+bob, px, r.player)
	sprite.DrawPartner(r.canvas, w/2+70, h-75-bob, px, r.partner)
}
