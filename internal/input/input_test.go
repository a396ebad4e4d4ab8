package input

import (
	"testing"
	"time"
)

func read(s *Stream, p string) Input {
	s.Feed([]byte(p))
	return readInputAt(s, time.Now())
}

func TestArrowAndLetters(t *testing.T) {
	s := NewStream(64)
	in := read(s, "\x1b[Dxp")
	if !in.Left {
		t.Error("left arrow not detected")
	}
	if !in.Key('p') || !in.Key('P') {
		t.Error("p not detected")
	}
	if in.Key('m') {
		t.Error("m reported without being pressed")
	}
	if string(in.Pressed) != "xp" {
		t.Errorf("pressed: got %q, want %q", in.Pressed, "xp")
	}
}

func TestMouseMotion(t *testing.T) {
	s := NewStream(64)
	in := read(s, "\x1b[<35;12;7M")
	if !in.HasMouse {
		t.Fatal("mouse not reported")
	}
	if in.Mouse.Col != 12 || in.Mouse.Row != 7 {
		t.Fatalf("got %+v, want col 12 row 7", in.Mouse)
	}
	if in.Clicked || in.Mouse.Down {
		t.Fatal("motion reported as click")
	}
	if len(in.Pressed) != 0 || in.Key('m') {
		t.Fatalf("mouse bytes leaked into keys: %q", in.Pressed)
	}
}

func TestMouseClickAndRelease(t *testing.T) {
	s := NewStream(64)
	in := read(s, "\x1b[<0;3;4M")
	if !in.Clicked || !in.Mouse.Down {
		t.Fatalf("click not detected: %+v", in)
	}
	in = read(s, "\x1b[<0;5;4m")
	if in.Clicked || in.Mouse.Down {
		t.Fatalf("release reported as click: %+v", in)
	}
	if in.Mouse.Col != 5 {
		t.Fatalf("col after release: got %d, want 5", in.Mouse.Col)
	}
}

func TestNewestMouseWins(t *testing.T) {
	s := NewStream(64)
	in := read(s, "\x1b[<35;1;1M\x1b[<35;2;1M\x1b[<35;40;9M")
	if in.Mouse.Col != 40 || in.Mouse.Row != 9 {
		t.Fatalf("got %+v, want the last report", in.Mouse)
	}
}

func TestSplitMouseReport(t *testing.T) {
	s := NewStream(64)
	in := read(s, "\x1b[<35;2")
	if in.HasMouse || len(in.Pressed) != 0 {
		t.Fatalf("partial report produced input: %+v", in)
	}
	in = read(s, "0;3M")
	if !in.HasMouse || in.Mouse.Col != 20 || in.Mouse.Row != 3 {
		t.Fatalf("joined report: got %+v", in.Mouse)
	}
}

func TestResetKeyInput(t *testing.T) {
	s := NewStream(64)
	read(s, "q")
	s.ResetKeyInput()
	in := readInputAt(s, time.Now())
	if in.Quit {
		t.Fatal("quit survived reset")
	}
}

func TestKeyHold(t *testing.T) {
	s := NewStream(64)
	now := time.Now()
	s.Feed([]byte("d"))
	readInputAt(s, now)
	if in := readInputAt(s, now.Add(10*time.Millisecond)); !in.Right {
		t.Error("key released inside hold window")
	}
	if in := readInputAt(s, now.Add(50*time.Millisecond)); in.Right {
		t.Error("key still held after hold window")
	}
}

func TestTapIsOneFrame(t *testing.T) {
	s := NewStream(16)
	now := time.Now()
	s.Feed([]byte("\x1b[Ad"))
	in := readInputAt(s, now)
	if !in.Tap.Up || !in.Tap.Right || in.Tap.Left {
		t.Fatalf("first frame taps: %+v", in.Tap)
	}
	in = readInputAt(s, now.Add(10*time.Millisecond))
	if !in.Up || !in.Right {
		t.Fatal("hold window lost")
	}
	if in.Tap.Up || in.Tap.Right {
		t.Fatalf("tap repeated on second frame: %+v", in.Tap)
	}
}

func TestNumberKey(t *testing.T) {
	s := NewStream(64)
	if in := read(s, "3"); in.Number != 3 {
		t.Fatalf("got %d, want 3", in.Number)
	}
}

func TestClosedStream(t *testing.T) {
	s := NewStream(4)
	close(s.ch)
	in := readInputAt(s, time.Now())
	if !in.Closed {
		t.Fatal("closed stream not reported")
	}
	// Must not block or spin on a closed channel.
	if in := readInputAt(s, time.Now()); !in.Closed {
		t.Fatal("closed flag lost")
	}
}
