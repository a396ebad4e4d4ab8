// Package config centralizes all tunable game parameters.
package config

import "time"

// Play-field resolution - the logical coordinate space hearts and the player
// move in. Actual rendering scales to fit terminal size.
const (
	FieldWidth  = 720
	FieldHeight = 480
	BasePixel   = 3.0 // Size of one sprite pixel in field units
)

// Frame pacing. Kinematics are expressed per frame at this rate.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Round timer
const (
	TimerInterval = time.Second // One countdown tick
)

// Spawning
const (
	SpawnBaseInterval = 30 // Frames between spawns at score 0
	SpawnMinInterval  = 12 // Fastest spawn rate
	SpawnRampScore    = 10 // Points per difficulty step
	SpawnRampFrames   = 2  // Frames removed from the interval per step
	SpawnMargin       = 40 // Horizontal inset from the field edges
	SpawnY            = -30
)

// Hearts
const (
	HeartBaseSpeed     = 1.5
	HeartSpeedJitter   = 1.8
	HeartSpeedPerPoint = 0.015
	HeartMaxBonusSpeed = 2.0
	HeartSizeMin       = 1.5 // In BasePixel units
	HeartSizeJitter    = 0.8
	WobbleAmplitude    = 0.6
	WobbleFrequency    = 0.015
	MissMargin         = 30 // Below the field before a heart counts as missed
)

// Player
const (
	PlayerSmoothing   = 0.18 // Fraction of the gap to the target closed per frame
	PlayerBaseOffset  = 60   // Sprite base above the bottom of the field
	CatchAnchorOffset = 15   // Catch anchor above the sprite base
	CatchHalfExtent   = 35   // Half side of the square hit box
	KeyboardNudge     = 24   // Target shift per direction key press
)

// Effects
const (
	ParticleDecay   = 0.03
	ParticleGravity = 0.12
	PopupDecay      = 0.02
	PopupRise       = 1.2
	BrokenBurst     = 6
	NormalBurst     = 8
	GoldBurst       = 14
	ComboLabelMin   = 3 // Combo count at which popups show the multiplier
)

// Celebration
const (
	HugFrames       = 300
	HugHeartsDelay  = 40
	HugTextDelay    = 80
	HugCharFadeRate = 0.015
	HugTextFadeRate = 0.02
	HugHoldFrames   = 90 // Pause after the animation before the win screen
)

// Server statistics
const (
	StatsLogInterval = 5 * time.Minute
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Terminal render limits
const (
	MaxTermWidth  = 180
	MaxTermHeight = 60
)
