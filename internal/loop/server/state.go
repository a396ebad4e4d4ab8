package server

import (
	"sort"
	"sync"

	"github.com/tomz197/pixellove/internal/loop/round"
)

// maxTopScores is the number of best rounds kept.
const maxTopScores = 5

// TopScoreEntry is one of the best finished rounds.
type TopScoreEntry struct {
	Username string
	Score    int
	Won      bool
}

// Stats accumulates results of finished rounds.
type Stats struct {
	mu        sync.Mutex
	rounds    int
	wins      int
	topScores []TopScoreEntry
}

// StatsSnapshot is a copy of the statistics.
type StatsSnapshot struct {
	Players   int
	Rounds    int
	Wins      int
	BestScore int
	TopScores []TopScoreEntry
}

// NewStats creates empty statistics.
func NewStats() *Stats {
	return &Stats{}
}

// Record adds one finished round.
func (st *Stats) Record(username string, outcome round.Outcome, score int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.rounds++
	won := outcome == round.OutcomeWin
	if won {
		st.wins++
	}

	st.topScores = append(st.topScores, TopScoreEntry{Username: username, Score: score, Won: won})
	sort.SliceStable(st.topScores, func(i, j int) bool {
		return st.topScores[i].Score > st.topScores[j].Score
	})
	if len(st.topScores) > maxTopScores {
		st.topScores = st.topScores[:maxTopScores]
	}
}

// Snapshot returns a copy of the statistics.
func (st *Stats) Snapshot() StatsSnapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	snap := StatsSnapshot{
		Rounds:    st.rounds,
		Wins:      st.wins,
		TopScores: append([]TopScoreEntry(nil), st.topScores...),
	}
	if len(st.topScores) > 0 {
		snap.BestScore = st.topScores[0].Score
	}
	return snap
}
