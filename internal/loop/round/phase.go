package round

// Phase is the lifecycle stage of a round.
type Phase int

const (
	PhaseIdle    Phase = iota // Not started yet
	PhaseRunning              // Timer ticking, hearts falling, input live
	PhasePaused               // Frozen; frames only redraw
	PhaseEnded                // Terminal until the next Start
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how an ended round finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}
