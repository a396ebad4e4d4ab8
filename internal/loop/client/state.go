package client

import (
	"time"

	"github.com/tomz197/pixellove/internal/input"
)

// Screen is the page a client is showing.
type Screen int

const (
	ScreenCustomize Screen = iota // Character and music setup
	ScreenIntro                   // Title, name and goal
	ScreenPlaying                 // Active round with HUD
	ScreenPaused                  // Pause menu over the frozen round
	ScreenCelebrate               // Hug animation after a win
	ScreenWin
	ScreenLose
	ScreenShutdown // Server is shutting down
)

// String returns a readable screen name.
func (s Screen) String() string {
	switch s {
	case ScreenCustomize:
		return "customize"
	case ScreenIntro:
		return "intro"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenCelebrate:
		return "celebrate"
	case ScreenWin:
		return "win"
	case ScreenLose:
		return "lose"
	case ScreenShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Pause menu entries.
const (
	pauseResume = iota
	pauseRestart
	pauseMenu
	pauseItems
)

// ClientState holds per-connection UI state. The round itself lives in the
// session.
type ClientState struct {
	Input         input.Input
	Screen        Screen
	prevScreen    Screen
	Running       bool
	delta         time.Duration
	frame         int     // Frames shown since the client started
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
	isInactive    bool
	wasInactive   bool

	pauseChoice    int
	celebrateFrame int
	result         result // Last finished round
	customize      customizeState
}

// NewClientState creates the state of a fresh connection.
func NewClientState() *ClientState {
	return &ClientState{
		Screen:     ScreenCustomize,
		prevScreen: ScreenCustomize,
		Running:    true,
	}
}
