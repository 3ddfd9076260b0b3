// Package input decodes raw terminal bytes into held keys.
package input

import (
	"bufio"
	"io"
	"sync"
	"time"

	"github.com/tomz197/rockfield/internal/game"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only repeat bytes while a key is down, so held state is inferred
// from how recently a byte arrived.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Space   bool
	Enter   bool
	Closed  bool   // The byte source hit EOF or failed
	Pressed []byte // Raw bytes drained this frame
}

// Held implements game.Input.
func (in Input) Held(a game.Action) bool {
	switch a {
	case game.ActionRotateLeft:
		return in.Left
	case game.ActionRotateRight:
		return in.Right
	case game.ActionThrust:
		return in.Up
	case game.ActionFire:
		return in.Space
	}
	return false
}

var _ game.Input = Input{}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	hold   time.Duration
	closed bool

	done     chan struct{} // Closed by Stop
	exited   chan struct{} // Closed when the reader goroutine returns
	stopOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error, or on the first byte after Stop.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := newStream()
	go func() {
		defer close(s.exited)
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:     make(chan byte, 128),
		hold:   keyHoldDuration,
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// Stop tells the reader goroutine that nobody drains the stream any more.
// A goroutine blocked in a read still waits for that read to return.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

// ResetKeyInput forgets every held key, e.g. when switching screens.
func ResetKeyInput(s *Stream) {
	if s != nil {
		s.state = keyState{}
	}
}

func (s *Stream) read(now time.Time) Input {
	var buf []byte

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

	s.parse(buf, now)

	held := func(t time.Time) bool { return now.Sub(t) < s.hold }
	return Input{
		Quit:    s.closed || held(s.state.quit),
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Up:      held(s.state.up),
		Space:   held(s.state.space),
		Enter:   held(s.state.enter),
		Closed:  s.closed,
		Pressed: buf,
	}
}

// parse updates key timestamps from a batch of bytes.
// Arrow keys arrive as CSI (ESC [ X) or SS3 (ESC O X) sequences.
func (s *Stream) parse(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			if s.applyArrow(buf[i+2], now) {
				i += 2
				continue
			}
		}
		applyByteToState(&s.state, b, now)
	}
}

func (s *Stream) applyArrow(code byte, now time.Time) bool {
	switch code {
	case 'A':
		s.state.up = now
	case 'C':
		s.state.right = now
	case 'D':
		s.state.left = now
	case 'B':
		// No reverse thrust; swallow the sequence.
	default:
		return false
	}
	return true
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
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
