package music

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Output is where the track is played.
type Output interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// OpenSpeaker initializes the default audio device.
func OpenSpeaker() (Output, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return speakerOutput{}, nil
}

// Player starts and stops the background track. A Player without an output
// only tracks the on/off state.
type Player struct {
	mu      sync.Mutex
	out     Output
	ctrl    *beep.Ctrl
	started bool
	playing bool
}

// NewPlayer creates a stopped player on out, which may be nil.
func NewPlayer(out Output) *Player {
	return &Player{
		out:  out,
		ctrl: &beep.Ctrl{Streamer: Loop(SampleRate), Paused: true},
	}
}

// Play starts or resumes the track.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing {
		return
	}
	p.playing = true
	if p.out == nil {
		return
	}

	p.out.Lock()
	p.ctrl.Paused = false
	p.out.Unlock()

	if !p.started {
		p.started = true
		p.out.Play(&effects.Gain{Streamer: p.ctrl, Gain: MasterGain - 1})
	}
}

// Stop pauses the track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing {
		return
	}
	p.playing = false
	if p.out == nil {
		return
	}

	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
}

// Toggle flips the track on or off and returns the new state.
func (p *Player) Toggle() bool {
	if p.Enabled() {
		p.Stop()
		return false
	}
	p.Play()
	return true
}

// Enabled reports whether the track is playing.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}
