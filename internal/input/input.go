// Package input turns raw terminal bytes into per-frame key and mouse state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Mouse is the latest pointer report. Col and Row are 1-based screen cells.
type Mouse struct {
	Col, Row int
	Down     bool // A button is held
}

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Space  bool
	Enter  bool
	Escape bool
	Number int
	// Pressed holds the plain key bytes of this frame, without escape sequences.
	Pressed []byte
	// Mouse is valid when HasMouse is set.
	Mouse    Mouse
	HasMouse bool
	// Clicked is set when a button went down this frame.
	Clicked bool
	// Closed is set once the underlying reader is exhausted.
	Closed bool
	// Tap holds the keys that arrived this frame, without the hold window.
	// Menus use it so one press moves one step.
	Tap Keys
}

// Keys is a set of navigation keys.
type Keys struct {
	Left, Right, Up, Down bool
	Space, Enter, Escape  bool
}

// Key reports whether the letter k (either case) was pressed this frame.
func (in Input) Key(k byte) bool {
	lower := k | 0x20
	for _, b := range in.Pressed {
		if b|0x20 == lower && isLetter(b) {
			return true
		}
	}
	return false
}

// Any reports whether any key or click arrived this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0 || in.Clicked || in.Left || in.Right ||
		in.Up || in.Down || in.Escape
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	up        time.Time
	down      time.Time
	space     time.Time
	enter     time.Time
	escape    time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	mouse  Mouse
	hasPtr bool
	closed bool
	// pending holds a mouse report split across reads.
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := NewStream(128)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// NewStream creates a stream fed through Feed instead of a reader.
func NewStream(buffer int) *Stream {
	return &Stream{
		ch:    make(chan byte, buffer),
		state: keyState{numberVal: -1},
	}
}

// Feed queues bytes as if they had been read from the terminal. It blocks
// when the buffer is full.
func (s *Stream) Feed(p []byte) {
	for _, b := range p {
		s.ch <- b
	}
}

// ResetKeyInput forgets held keys so a press from the previous screen does
// not leak into the next one. The pointer position is kept.
func (s *Stream) ResetKeyInput() {
	s.state = keyState{numberVal: -1}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and SGR mouse reports, and
// accumulates all pressed keys. Uses key state persistence to allow
// detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	buf := s.pending
	s.pending = nil

	// Drain all available bytes
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var pressed []byte
	clicked := false
	before := s.state

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 == len(buf) && buf[i+1] == '[' && !s.closed {
			s.pending = append([]byte(nil), buf[i:]...)
			break
		}

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// SGR mouse: ESC [ < btn ; col ; row (M|m)
			if buf[i+2] == '<' {
				ev, n, res := parseSGRMouse(buf[i+3:])
				if res == parseIncomplete && !s.closed {
					s.pending = append([]byte(nil), buf[i:]...)
					break
				}
				if res == parseOK {
					s.mouse.Col, s.mouse.Row = ev.col, ev.row
					s.hasPtr = true
					if ev.press && !ev.motion && !ev.wheel {
						s.mouse.Down = true
						clicked = true
					}
					if !ev.press {
						s.mouse.Down = false
					}
					i += 2 + n
					continue
				}
			}

			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
		pressed = append(pressed, b)
	}

	input := Input{
		Quit:     now.Sub(s.state.quit) < keyHoldDuration,
		Left:     now.Sub(s.state.left) < keyHoldDuration,
		Right:    now.Sub(s.state.right) < keyHoldDuration,
		Up:       now.Sub(s.state.up) < keyHoldDuration,
		Down:     now.Sub(s.state.down) < keyHoldDuration,
		Space:    now.Sub(s.state.space) < keyHoldDuration,
		Enter:    now.Sub(s.state.enter) < keyHoldDuration,
		Escape:   now.Sub(s.state.escape) < keyHoldDuration,
		Number:   -1,
		Pressed:  pressed,
		Mouse:    s.mouse,
		HasMouse: s.hasPtr,
		Clicked:  clicked,
		Closed:   s.closed,
		Tap: Keys{
			Left:   !s.state.left.Equal(before.left),
			Right:  !s.state.right.Equal(before.right),
			Up:     !s.state.up.Equal(before.up),
			Down:   !s.state.down.Equal(before.down),
			Space:  !s.state.space.Equal(before.space),
			Enter:  !s.state.enter.Equal(before.enter),
			Escape: !s.state.escape.Equal(before.escape),
		},
	}

	// Number is only set if recently pressed
	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}

	return input
}

type parseResult int

const (
	parseOK parseResult = iota
	parseIncomplete
	parseInvalid
)

type mouseEvent struct {
	col, row int
	press    bool // M terminator; m is a release
	motion   bool
	wheel    bool
}

// parseSGRMouse parses "btn;col;row" followed by 'M' or 'm'. It returns the
// event and the number of bytes consumed, including the terminator.
func parseSGRMouse(p []byte) (mouseEvent, int, parseResult) {
	var fields [3]int
	field := 0
	digits := 0
	for i, b := range p {
		switch {
		case b >= '0' && b <= '9':
			fields[field] = fields[field]*10 + int(b-'0')
			digits++
		case b == ';':
			if digits == 0 || field == 2 {
				return mouseEvent{}, 0, parseInvalid
			}
			field++
			digits = 0
		case b == 'M' || b == 'm':
			if field != 2 || digits == 0 {
				return mouseEvent{}, 0, parseInvalid
			}
			btn := fields[0]
			return mouseEvent{
				col:    fields[1],
				row:    fields[2],
				press:  b == 'M',
				motion: btn&32 != 0,
				wheel:  btn&64 != 0,
			}, i + 1, parseOK
		default:
			return mouseEvent{}, 0, parseInvalid
		}
	}
	return mouseEvent{}, 0, parseIncomplete
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
