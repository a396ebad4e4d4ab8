package client

import (
	"sync"

	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/loop/round"
)

// result is a finished round as reported by the session.
type result struct {
	outcome round.Outcome
	score   int
	cfg     config.Config
}

// hudView is a copy of the values the HUD shows.
type hudView struct {
	visible  bool
	score    int
	timeLeft int
	progress int
	target   int
}

// hud receives UI updates from the session. Calls may arrive from the
// session's timer goroutine, so every field is behind mu. The client polls
// it once per frame.
type hud struct {
	mu      sync.Mutex
	view    hudView
	pending *result
}

var _ round.UI = (*hud)(nil)

func (h *hud) ShowHUD(visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view.visible = visible
}

func (h *hud) UpdateScore(score int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view.score = score
}

func (h *hud) UpdateTimer(seconds int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view.timeLeft = seconds
}

func (h *hud) UpdateProgress(current, target int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view.progress = current
	h.view.target = target
}

func (h *hud) ShowWin(score int, cfg config.Config) {
	h.finish(round.OutcomeWin, score, cfg)
}

func (h *hud) ShowLose(score int, cfg config.Config) {
	h.finish(round.OutcomeLose, score, cfg)
}

func (h *hud) finish(outcome round.Outcome, score int, cfg config.Config) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = &result{outcome: outcome, score: score, cfg: cfg}
}

// snapshot returns the current HUD values.
func (h *hud) snapshot() hudView {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view
}

// takeResult returns and clears a round result not yet handled.
func (h *hud) takeResult() (result, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		return result{}, false
	}
	r := *h.pending
	h.pending = nil
	return r, true
}

// fillRatio is how full the progress bar is, clamped to [0, 1].
func (v hudView) fillRatio() float64 {
	if v.target <= 0 {
		return 0
	}
	return min(float64(v.progress)/float64(v.target), 1)
}
