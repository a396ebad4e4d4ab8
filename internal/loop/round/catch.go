package round

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/pixellove/internal/loop/config"
	"github.com/tomz197/pixellove/internal/object"
)

// catchResult describes the effects of one catch.
type catchResult struct {
	points int // Signed score change before clamping
	label  string
	color  colorful.Color
	burst  int
}

// applyCatch updates score and combo for a caught heart.
//
// Broken hearts cost rules.PenaltyPoints (score never drops below zero) and
// end the streak. Any other catch continues the streak when it lands strictly
// inside the combo window of the previous one, and always becomes the new
// reference time. Gold pays GoldPoints; otherwise a streak of three or more
// pays ComboPoints and anything else pays 1.
func (st *RoundState) applyCatch(kind object.HeartKind, now time.Time, rules config.Gameplay) catchResult {
	if kind == object.HeartBroken {
		st.Score = max(0, st.Score-rules.PenaltyPoints)
		st.Combo = 0
		return catchResult{
			points: -rules.PenaltyPoints,
			label:  fmt.Sprintf("-%d", rules.PenaltyPoints),
			color:  object.PenaltyPopupColor,
			burst:  config.BrokenBurst,
		}
	}

	if !st.LastCatch.IsZero() && now.Sub(st.LastCatch) < rules.ComboWindow() {
		st.Combo++
	} else {
		st.Combo = 1
	}
	st.LastCatch = now

	points := 1
	switch {
	case kind == object.HeartGold:
		points = rules.GoldPoints
	case st.Combo >= config.ComboLabelMin:
		points = rules.ComboPoints
	}
	st.Score += points

	res := catchResult{
		points: points,
		label:  fmt.Sprintf("+%d", points),
		color:  object.ScorePopupColor,
		burst:  config.NormalBurst,
	}
	if st.Combo >= config.ComboLabelMin {
		res.label = fmt.Sprintf("+%d x%d!", points, st.Combo)
	}
	if kind == object.HeartGold {
		res.color = object.GoldPopupColor
		res.burst = config.GoldBurst
	}
	return res
}

// catchLocked resolves one caught heart: scoring, effects and HUD updates.
// Returns true when the catch ended the round. Must be called with s.mu held.
func (s *Session) catchLocked(h *object.Heart, now time.Time) bool {
	res := s.state.applyCatch(h.Kind, now, s.rules)

	object.SpawnBurst(h.X, h.Y, res.burst, h.Color, s.rng, s.state)
	s.state.Spawn(object.NewPopup(h.X, h.Y, res.label, res.color))

	s.ui.UpdateScore(s.state.Score)
	s.ui.UpdateProgress(s.state.Score, s.rules.TargetScore)

	if s.state.Score >= s.rules.TargetScore {
		s.endLocked(OutcomeWin)
		return true
	}
	return false
}
