package server

import (
	"testing"
	"time"

	"github.com/tomz197/pixellove/internal/loop/round"
)

func TestRegisterUnregister(t *testing.T) {
	s := NewServer(nil)
	a := s.RegisterClient("alice")
	b := s.RegisterClient("bob")
	if a.ID == b.ID {
		t.Fatal("duplicate client IDs")
	}
	if s.Players() != 2 {
		t.Fatalf("players: %d", s.Players())
	}

	s.UnregisterClient(a.ID)
	if _, ok := <-a.EventsCh; ok {
		t.Fatal("events channel not closed")
	}
	s.UnregisterClient(a.ID)
	if s.Players() != 1 {
		t.Fatalf("players: %d", s.Players())
	}
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	s := NewServer(nil)
	h := s.RegisterClient("alice")

	go func() {
		ev := <-h.EventsCh
		if ev.Type == EventServerShutdown {
			s.UnregisterClient(h.ID)
		}
	}()

	done := make(chan struct{})
	go func() {
		s.Shutdown(5 * time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return after the client left")
	}
	if s.Players() != 0 {
		t.Fatalf("players: %d", s.Players())
	}
}

func TestShutdownTimeout(t *testing.T) {
	s := NewServer(nil)
	s.RegisterClient("idle")

	start := time.Now()
	s.Shutdown(50 * time.Millisecond)
	if time.Since(start) > time.Second {
		t.Fatal("Shutdown ignored its timeout")
	}
}

func TestReportRound(t *testing.T) {
	s := NewServer(nil)
	h := s.RegisterClient("alice")

	s.ReportRound(h.ID, round.OutcomeLose, 80)
	s.ReportRound(h.ID, round.OutcomeWin, 103)
	for i := 0; i < 6; i++ {
		s.ReportRound(h.ID, round.OutcomeLose, i)
	}

	snap := s.Snapshot()
	if snap.Rounds != 8 || snap.Wins != 1 || snap.Players != 1 {
		t.Fatalf("snapshot: %+v", snap)
	}
	if snap.BestScore != 103 || len(snap.TopScores) != maxTopScores {
		t.Fatalf("top scores: %+v", snap.TopScores)
	}
	if top := snap.TopScores[0]; top.Username != "alice" || !top.Won {
		t.Fatalf("best entry: %+v", top)
	}
}
