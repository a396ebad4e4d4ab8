// Package music synthesizes the looping chiptune background track.
package music

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the output sample rate of the track.
const SampleRate = beep.SampleRate(44100)

const (
	// Beat is one beat at 120 BPM.
	Beat = 500 * time.Millisecond
	// BassDelay offsets the bass line against the melody.
	BassDelay = 100 * time.Millisecond
	// MasterGain scales the whole mix.
	MasterGain = 0.15

	attack  = 10 * time.Millisecond
	decay   = 50 * time.Millisecond
	release = 50 * time.Millisecond
	sustain = 0.7
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
)

// Note is one step of a line. A zero frequency is a rest.
type Note struct {
	Freq  float64
	Beats float64
	Gain  float64
}

// Melody is a short romantic line in C major.
var Melody = []Note{
	{523.25, 1, 0.3},
	{659.25, 0.5, 0.25},
	{587.33, 0.5, 0.25},
	{523.25, 1, 0.3},

	{587.33, 1, 0.3},
	{659.25, 0.5, 0.25},
	{698.46, 0.5, 0.25},
	{659.25, 1, 0.3},

	{784.00, 1, 0.3},
	{659.25, 0.5, 0.25},
	{523.25, 0.5, 0.25},
	{587.33, 1, 0.3},

	{523.25, 2, 0.35},
	{0, 1, 0},
	{0, 1, 0},
}

// Bass is the octave-lower accompaniment.
var Bass = []Note{
	{261.63, 2, 0.2},
	{293.66, 2, 0.2},
	{329.63, 2, 0.2},
	{261.63, 2, 0.2},
}

// Duration returns the length of a line.
func Duration(notes []Note) time.Duration {
	var beats float64
	for _, n := range notes {
		beats += n.Beats
	}
	return time.Duration(beats * float64(Beat))
}

// LoopDuration is the length of one pass of the track.
func LoopDuration() time.Duration {
	return max(Duration(Melody), Duration(Bass))
}

// tone is a single enveloped note.
type tone struct {
	freq  float64
	gain  float64
	wave  Wave
	phase float64
	pos   int
	total int
	rate  beep.SampleRate
}

func newTone(n Note, wave Wave, rate beep.SampleRate) *tone {
	return &tone{
		freq:  n.Freq,
		gain:  n.Gain,
		wave:  wave,
		total: rate.N(time.Duration(n.Beats * float64(Beat))),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		if t.freq > 0 {
			val = oscillate(t.wave, t.phase) * t.gain * envelopeAt(t.pos, t.total, t.rate)
			t.phase += t.freq / float64(t.rate)
			t.phase -= math.Floor(t.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// oscillate returns the wave value at phase in [0, 1).
func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		if phase < 0.5 {
			return 1
		}
		return -1
	}
}

// envelopeAt is the attack/decay/sustain/release level at sample pos of a
// note total samples long.
func envelopeAt(pos, total int, rate beep.SampleRate) float64 {
	a := rate.N(attack)
	d := rate.N(decay)
	r := rate.N(release)

	switch {
	case pos >= total-r:
		left := float64(total - pos)
		return sustain * left / float64(r)
	case pos < a:
		return float64(pos) / float64(a)
	case pos < d:
		return 1 - (1-sustain)*float64(pos-a)/float64(d-a)
	default:
		return sustain
	}
}

func line(notes []Note, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, wave, rate))
	}
	return beep.Seq(parts...)
}

// Track returns one pass of melody and bass mixed, padded to LoopDuration.
func Track(rate beep.SampleRate) beep.Streamer {
	melody := line(Melody, WaveSquare, rate)
	bass := beep.Seq(beep.Silence(rate.N(BassDelay)), line(Bass, WaveTriangle, rate))
	return beep.Take(rate.N(LoopDuration()), beep.Seq(
		beep.Mix(melody, bass),
		beep.Silence(-1),
	))
}

// Loop repeats Track forever.
func Loop(rate beep.SampleRate) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		return Track(rate)
	})
}
