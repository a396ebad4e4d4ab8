package physics

import (
	"math"
	"testing"
)

func TestWithinBox(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 100, 100, true},
		{"inside corner", 134.9, 65.1, true},
		{"on right edge", 135, 100, false},
		{"on top edge", 100, 65, false},
		{"outside diagonal", 140, 140, false},
		// A circle of radius 35 would reject this point; the square accepts it.
		{"square corner beyond radius", 130, 130, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinBox(tt.px, tt.py, 100, 100, 35)
			if got != tt.want {
				t.Errorf("WithinBox(%v, %v): got %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestApproachConverges(t *testing.T) {
	x := 0.0
	x = Approach(x, 100, 0.18)
	if math.Abs(x-18) > 1e-9 {
		t.Fatalf("first step: got %v, want 18", x)
	}
	x = Approach(x, 100, 0.18)
	if math.Abs(x-32.76) > 1e-9 {
		t.Fatalf("second step: got %v, want 32.76", x)
	}
	for i := 0; i < 200; i++ {
		x = Approach(x, 100, 0.18)
	}
	if math.Abs(x-100) > 1e-6 {
		t.Fatalf("after many steps: got %v, want ~100", x)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp below: got %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp above: got %v, want 10", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp inside: got %v, want 5", got)
	}
}
