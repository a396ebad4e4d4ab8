package music

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestDurations(t *testing.T) {
	if d := Duration(Melody); d != 8*time.Second {
		t.Fatalf("melody: %v", d)
	}
	if d := Duration(Bass); d != 4*time.Second {
		t.Fatalf("bass: %v", d)
	}
	if d := LoopDuration(); d != 8*time.Second {
		t.Fatalf("loop: %v", d)
	}
}

func TestTrackLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := Track(rate)
	buf := make([][2]float64, 1000)
	total := 0
	loud := false
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if smp[0] != 0 {
				loud = true
			}
		}
		if !ok {
			break
		}
	}
	if want := rate.N(LoopDuration()); total != want {
		t.Fatalf("samples: got %d, want %d", total, want)
	}
	if !loud {
		t.Fatal("track is silent")
	}
}

func TestEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	total := rate.N(Beat)
	tests := []struct {
		pos  int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{50, 0.7},
		{300, 0.7},
		{total - 25, 0.35},
	}
	for _, tt := range tests {
		if got := envelopeAt(tt.pos, total, rate); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("envelopeAt(%d): got %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestOscillate(t *testing.T) {
	if oscillate(WaveSquare, 0.1) != 1 || oscillate(WaveSquare, 0.6) != -1 {
		t.Fatal("square wave")
	}
	if oscillate(WaveTriangle, 0) != -1 || oscillate(WaveTriangle, 0.5) != 1 {
		t.Fatal("triangle wave")
	}
}

func TestRestIsSilent(t *testing.T) {
	s := newTone(Note{Freq: 0, Beats: 1}, WaveSquare, beep.SampleRate(1000))
	buf := make([][2]float64, 100)
	n, ok := s.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("stream: %d %v", n, ok)
	}
	for _, smp := range buf {
		if smp[0] != 0 {
			t.Fatal("rest produced sound")
		}
	}
}

type fakeOutput struct {
	mu      sync.Mutex
	streams []beep.Streamer
}

func (o *fakeOutput) Play(s beep.Streamer) { o.streams = append(o.streams, s) }
func (o *fakeOutput) Lock()                { o.mu.Lock() }
func (o *fakeOutput) Unlock()              { o.mu.Unlock() }

func peak(s beep.Streamer) float64 {
	buf := make([][2]float64, 4410)
	n, _ := s.Stream(buf)
	var p float64
	for _, smp := range buf[:n] {
		p = max(p, math.Abs(smp[0]))
	}
	return p
}

func TestPlayerPlayStop(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(out)
	if p.Enabled() {
		t.Fatal("new player should be stopped")
	}

	p.Play()
	p.Play()
	if len(out.streams) != 1 {
		t.Fatalf("streams started: %d", len(out.streams))
	}
	if peak(out.streams[0]) == 0 {
		t.Fatal("playing track is silent")
	}
	if peak(out.streams[0]) > MasterGain {
		t.Fatal("master gain not applied")
	}

	p.Stop()
	if p.Enabled() || peak(out.streams[0]) != 0 {
		t.Fatal("stopped track still plays")
	}

	if !p.Toggle() || !p.Enabled() {
		t.Fatal("toggle should resume")
	}
	if len(out.streams) != 1 {
		t.Fatal("resume started a second stream")
	}
	if p.Toggle() {
		t.Fatal("toggle should stop")
	}
}

func TestPlayerWithoutOutput(t *testing.T) {
	p := NewPlayer(nil)
	if !p.Toggle() || !p.Enabled() {
		t.Fatal("state not tracked")
	}
	p.Stop()
	if p.Enabled() {
		t.Fatal("stop ignored")
	}
}
