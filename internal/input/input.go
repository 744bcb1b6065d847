// Package input decodes raw terminal bytes into logical key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals only report presses, so holding a key relies on auto-repeat
// arriving within this window.
const keyHoldDuration = 100 * time.Millisecond

// keyRepeatGrace is the longest gap between bytes of one key that still counts
// as the same press. Terminals wait up to ~600ms before auto-repeat starts.
const keyRepeatGrace = 600 * time.Millisecond

// Key is a logical key the game reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire1 // primary fire, held
	KeyFire2 // meteor, edge-triggered
	KeyEnter
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{"left", "right", "up", "down", "fire1", "fire2", "enter", "quit"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Input is one frame's key state.
type Input struct {
	held [keyCount]bool
	down [keyCount]bool
	// Pressed holds the raw bytes received this frame.
	Pressed []byte
}

// Key reports whether k is currently held.
func (in Input) Key(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.held[k]
}

// KeyDown reports whether k went down this frame.
func (in Input) KeyDown(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.down[k]
}

// Set overrides a key's state. Used by scripted hosts such as the headless runner.
func (in *Input) Set(k Key, held, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	in.held[k] = held
	in.down[k] = down
}

// Stream delivers input bytes via a channel and tracks key state across frames.
type Stream struct {
	ch       chan byte
	lastSeen [keyCount]time.Time
}

// NewStream creates a stream with no reader attached. Bytes are fed via Decode.
func NewStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := NewStream()
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

// ReadInput drains all available bytes from the stream (non-blocking) and
// decodes them. A closed stream reports KeyQuit so hosts shut down.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.Decode(buf, time.Now())
	if closed {
		in.Set(KeyQuit, true, true)
	}
	return in
}

// Decode applies the bytes received at time now and builds the frame's input.
func (s *Stream) Decode(buf []byte, now time.Time) Input {
	var seen [keyCount]bool

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k, ok := arrowKey(buf[i+2]); ok {
				seen[k] = true
				i += 2
				continue
			}
		}

		if k, ok := byteKey(b); ok {
			seen[k] = true
		}
	}

	in := Input{Pressed: buf}
	for k := Key(0); k < keyCount; k++ {
		if seen[k] {
			last := s.lastSeen[k]
			in.down[k] = last.IsZero() || now.Sub(last) > keyRepeatGrace
			s.lastSeen[k] = now
		}
		in.held[k] = !s.lastSeen[k].IsZero() && now.Sub(s.lastSeen[k]) < keyHoldDuration
	}
	return in
}

func arrowKey(code byte) (Key, bool) {
	switch code {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q':
		return KeyQuit, true
	case 'a', 'A', 'h', 'H':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case 'w', 'W':
		return KeyUp, true
	case 's', 'S':
		return KeyDown, true
	case ' ', 'j', 'J':
		return KeyFire1, true
	case 'k', 'K', 'm', 'M':
		return KeyFire2, true
	case '\n', '\r':
		return KeyEnter, true
	}
	return 0, false
}
