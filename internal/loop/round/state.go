package round

import (
	"time"

	"github.com/tomz197/pixellove/internal/object"
)

// RoundState holds everything one round mutates. Score is only changed by
// the catch resolver and TimeRemaining only by the timer.
type RoundState struct {
	Score         int
	TimeRemaining int // Seconds
	Combo         int
	LastCatch     time.Time // Zero until the first non-broken catch

	Player    *object.Player
	Hearts    []*object.Heart
	Particles []*object.Particle
	Popups    []*object.Popup
}

// newRoundState creates a fresh round for the given field and time limit.
func newRoundState(field object.Field, timeLimit int) *RoundState {
	return &RoundState{
		TimeRemaining: timeLimit,
		Player:        object.NewPlayer(field),
	}
}

// Spawn queues an object into its collection.
// Implements object.Spawner.
func (st *RoundState) Spawn(obj object.Object) {
	switch o := obj.(type) {
	case *object.Heart:
		st.Hearts = append(st.Hearts, o)
	case *object.Particle:
		st.Particles = append(st.Particles, o)
	case *object.Popup:
		st.Popups = append(st.Popups, o)
	}
}

// release returns pooled objects before the state is discarded.
func (st *RoundState) release() {
	for _, p := range st.Particles {
		p.Release()
	}
	st.Particles = nil
}

// Snapshot is a copy of the observable round state.
type Snapshot struct {
	Phase         Phase
	Outcome       Outcome
	Score         int
	TimeRemaining int
	Combo         int
	PlayerX       float64
	TargetX       float64
	Hearts        int
	Particles     int
	Popups        int
	Frame         int
}
