package round

import "time"

// startTimerLocked begins a new countdown generation. Ticks of older
// generations are ignored, so a stopped ticker can never double count.
// Must be called with s.mu held.
func (s *Session) startTimerLocked() {
	s.stopTimerLocked()
	gen := s.timerGen
	if s.manualTimer || s.closed {
		return
	}

	stop := make(chan struct{})
	s.timerStop = stop
	s.wg.Add(1)
	go s.runTimer(gen, stop)
}

// stopTimerLocked stops the running ticker, if any, and invalidates its
// generation. Must be called with s.mu held.
func (s *Session) stopTimerLocked() {
	if s.timerStop != nil {
		close(s.timerStop)
		s.timerStop = nil
	}
	s.timerGen++
}

func (s *Session) runTimer(gen uint64, stop <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick(gen)
		}
	}
}

// tick applies one countdown step if gen is still the live generation.
func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.timerGen {
		return
	}
	s.tickLocked()
}

// tickLocked decrements the remaining time and ends the round as lost when
// it runs out. Must be called with s.mu held.
func (s *Session) tickLocked() {
	if s.phase != PhaseRunning {
		return
	}
	s.state.TimeRemaining--
	s.ui.UpdateTimer(s.state.TimeRemaining)
	if s.state.TimeRemaining <= 0 {
		s.endLocked(OutcomeLose)
	}
}
