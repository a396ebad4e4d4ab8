package object

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
)

var (
	// GoldColor is the fill of gold hearts.
	GoldColor = colorful.Color{R: 1, G: 0.843, B: 0}
	// BrokenColor is the fill of broken hearts and their particles.
	BrokenColor = colorful.Color{R: 0.333, G: 0.333, B: 0.333}
)

// SpawnInterval returns the number of frames between spawns at the given score.
func SpawnInterval(score int) int {
	interval := config.SpawnBaseInterval - config.SpawnRampFrames*(score/config.SpawnRampScore)
	if interval < config.SpawnMinInterval {
		return config.SpawnMinInterval
	}
	return interval
}

// KindFor picks a heart kind from two independent uniform draws in [0, 1).
// Broken is checked first, so the kinds are mutually exclusive.
func KindFor(brokenDraw, goldDraw float64, g config.Gameplay) HeartKind {
	if brokenDraw < g.BrokenHeartChance {
		return HeartBroken
	}
	if goldDraw < g.GoldHeartChance {
		return HeartGold
	}
	return HeartNormal
}

// HeartSpawner emits hearts at a score-dependent frame interval.
type HeartSpawner struct {
	rng     *rand.Rand
	rules   config.Gameplay
	palette []colorful.Color
	counter int
}

// NewHeartSpawner creates a spawner drawing from rng. Normal hearts pick a
// fill from palette; an empty palette falls back to a single pink.
func NewHeartSpawner(rng *rand.Rand, rules config.Gameplay, palette []colorful.Color) *HeartSpawner {
	if len(palette) == 0 {
		palette = []colorful.Color{{R: 1, G: 0.29, B: 0.43}}
	}
	return &HeartSpawner{
		rng:     rng,
		rules:   rules,
		palette: palette,
	}
}

// Step advances the frame counter. When the counter reaches the current
// interval it resets and a new heart is returned; otherwise nil.
func (s *HeartSpawner) Step(score int, field Field) *Heart {
	s.counter++
	if s.counter < SpawnInterval(score) {
		return nil
	}
	s.counter = 0
	return s.NewHeart(score, field)
}

// NewHeart creates a heart above the field using the spawner's random source.
func (s *HeartSpawner) NewHeart(score int, field Field) *Heart {
	x := config.SpawnMargin + s.rng.Float64()*(field.Width-2*config.SpawnMargin)
	speed := config.HeartBaseSpeed + s.rng.Float64()*config.HeartSpeedJitter +
		math.Min(float64(score)*config.HeartSpeedPerPoint, config.HeartMaxBonusSpeed)
	size := config.BasePixel * (config.HeartSizeMin + s.rng.Float64()*config.HeartSizeJitter)
	wobble := s.rng.Float64() * 2 * math.Pi

	brokenDraw := s.rng.Float64()
	// The gold draw only happens when the heart is not broken.
	goldDraw := 1.0
	if brokenDraw >= s.rules.BrokenHeartChance {
		goldDraw = s.rng.Float64()
	}
	kind := KindFor(brokenDraw, goldDraw, s.rules)

	c := s.palette[s.rng.Intn(len(s.palette))]
	switch kind {
	case HeartGold:
		c = GoldColor
	case HeartBroken:
		c = BrokenColor
	}

	return &Heart{
		X:      x,
		Y:      config.SpawnY,
		Size:   size,
		Speed:  speed,
		Wobble: wobble,
		Color:  c,
		Kind:   kind,
	}
}

// Counter returns the frames elapsed since the last spawn.
func (s *HeartSpawner) Counter() int {
	return s.counter
}

// Reset zeroes the frame counter.
func (s *HeartSpawner) Reset() {
	s.counter = 0
}
