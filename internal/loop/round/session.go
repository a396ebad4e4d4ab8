// Package round implements one player's round: spawning, catching, scoring,
// the countdown and the Idle/Running/Paused/Ended state machine.
package round

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/object"
	"github.com/tomz197/pixellove/internal/physics"
	"github.com/tomz197/pixellove/internal/sprite"
)

// Options configures a Session. Zero values get working defaults.
type Options struct {
	Renderer object.Renderer
	UI       UI
	Logger   *log.Logger
	Rand     *rand.Rand

	// TimerInterval is the length of one countdown second.
	TimerInterval time.Duration
	// ManualTimer disables the internal ticker; the caller drives Tick.
	ManualTimer bool
}

// Session owns one round. The frame loop and the countdown timer both
// mutate it; every entry point serializes on mu.
type Session struct {
	mu sync.Mutex

	cfg   config.Config
	rules config.Gameplay
	field object.Field

	phase   Phase
	outcome Outcome
	state   *RoundState
	frame   int
	closed  bool
	spawner *object.HeartSpawner

	renderer object.Renderer
	ui       UI
	logger   *log.Logger
	rng      *rand.Rand

	interval    time.Duration
	manualTimer bool
	timerGen    uint64
	timerStop   chan struct{}
	wg          sync.WaitGroup
}

// NewSession creates an idle session for cfg. Missing gameplay values are
// replaced by defaults.
func NewSession(cfg config.Config, opts Options) *Session {
	rules := cfg.Gameplay.WithDefaults()
	cfg.Gameplay = rules
	field := object.Field{Width: rules.FieldWidth, Height: rules.FieldHeight}

	s := &Session{
		cfg:         cfg,
		rules:       rules,
		field:       field,
		phase:       PhaseIdle,
		renderer:    opts.Renderer,
		ui:          opts.UI,
		logger:      opts.Logger,
		rng:         opts.Rand,
		interval:    opts.TimerInterval,
		manualTimer: opts.ManualTimer,
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.ui == nil {
		s.ui = nopUI{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.interval <= 0 {
		s.interval = config.TimerInterval
	}

	s.spawner = object.NewHeartSpawner(s.rng, rules, sprite.HexAll(cfg.Theme.HeartColors))
	s.state = newRoundState(field, rules.TimeLimit)
	return s
}

// Config returns the configuration the session was created with, with
// gameplay defaults applied.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Field returns the play-field size.
func (s *Session) Field() object.Field {
	return s.field
}

// Start discards any previous round and begins a new one. Valid from every
// phase.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.stopTimerLocked()
	s.state.release()
	s.state = newRoundState(s.field, s.rules.TimeLimit)
	s.spawner.Reset()
	s.frame = 0
	s.phase = PhaseRunning
	s.outcome = OutcomeNone

	s.ui.ShowHUD(true)
	s.ui.UpdateScore(0)
	s.ui.UpdateTimer(s.state.TimeRemaining)
	s.ui.UpdateProgress(0, s.rules.TargetScore)

	s.startTimerLocked()
	s.logger.Debug("round started", "target", s.rules.TargetScore, "timeLimit", s.rules.TimeLimit)
}

// Pause freezes a running round. No-op in any other phase.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhasePaused
	s.stopTimerLocked()
	s.logger.Debug("round paused", "score", s.state.Score, "remaining", s.state.TimeRemaining)
}

// Resume continues a paused round with a fresh ticker. No-op in any other
// phase.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePaused {
		return
	}
	s.phase = PhaseRunning
	s.startTimerLocked()
	s.logger.Debug("round resumed", "score", s.state.Score, "remaining", s.state.TimeRemaining)
}

// SetTarget sets the x coordinate the player moves toward. The newest value
// wins; ignored unless running.
func (s *Session) SetTarget(x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return
	}
	s.state.Player.TargetX = x
}

// NudgeTarget shifts the player's target by dx, kept inside the field.
// Ignored unless running.
func (s *Session) NudgeTarget(dx float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return
	}
	p := s.state.Player
	p.TargetX = physics.Clamp(p.TargetX+dx, 0, s.field.Width)
}

// Tick applies one countdown second to the live timer generation. Used when
// the session was created with ManualTimer.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked()
}

// Frame advances and draws one frame. Running rounds spawn, move the
// player, move and resolve hearts, then age effects before drawing. Paused
// rounds only draw. Idle and ended rounds do nothing.
func (s *Session) Frame(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseRunning:
		if ended := s.updateLocked(now); ended {
			return
		}
	case PhasePaused:
	default:
		return
	}

	s.frame++
	s.drawLocked()
}

// updateLocked runs the simulation step. Returns true if a catch ended the
// round, in which case the rest of the frame is skipped.
func (s *Session) updateLocked(now time.Time) bool {
	st := s.state
	ctx := object.UpdateContext{Field: s.field}

	if h := s.spawner.Step(st.Score, s.field); h != nil {
		st.Spawn(h)
	}

	st.Player.Update(ctx)

	kept := st.Hearts[:0]
	for i, h := range st.Hearts {
		missed := h.Update(ctx)
		if st.Player.Catches(h) {
			if s.catchLocked(h, now) {
				kept = append(kept, st.Hearts[i+1:]...)
				st.Hearts = kept
				return true
			}
			continue
		}
		if missed {
			continue
		}
		kept = append(kept, h)
	}
	clear(st.Hearts[len(kept):])
	st.Hearts = kept

	st.Particles = object.UpdateAll(st.Particles, ctx)
	st.Popups = object.UpdateAll(st.Popups, ctx)
	return false
}

func (s *Session) drawLocked() {
	st := s.state
	s.renderer.Background(s.frame)
	object.DrawAll(st.Hearts, s.renderer)
	object.DrawAll(st.Particles, s.renderer)
	object.DrawAll(st.Popups, s.renderer)
	st.Player.Draw(s.renderer)
}

// endLocked moves the round to Ended and reports the outcome. Must be called
// with s.mu held.
func (s *Session) endLocked(outcome Outcome) {
	if s.phase == PhaseEnded || s.phase == PhaseIdle {
		return
	}
	s.stopTimerLocked()
	s.phase = PhaseEnded
	s.outcome = outcome

	remaining := max(0, s.rules.TargetScore-s.state.Score)
	s.logger.Info("round ended",
		"outcome", outcome,
		"score", s.state.Score,
		"remaining", remaining,
		"timeLeft", s.state.TimeRemaining,
	)

	s.ui.ShowHUD(false)
	if outcome == OutcomeWin {
		s.ui.ShowWin(s.state.Score, s.cfg)
	} else {
		s.ui.ShowLose(s.state.Score, s.cfg)
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	return Snapshot{
		Phase:         s.phase,
		Outcome:       s.outcome,
		Score:         st.Score,
		TimeRemaining: st.TimeRemaining,
		Combo:         st.Combo,
		PlayerX:       st.Player.X,
		TargetX:       st.Player.TargetX,
		Hearts:        len(st.Hearts),
		Particles:     len(st.Particles),
		Popups:        len(st.Popups),
		Frame:         s.frame,
	}
}

// Close stops the timer and waits for it to exit. The session ignores
// Start afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopTimerLocked()
	s.mu.Unlock()

	s.wg.Wait()
}
