// Package input decodes raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its last press.
// Terminals report auto-repeat presses, never releases, so holding is inferred from recency.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
// Movement keys are held state; the remaining flags are one-shot presses
// seen since the previous frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	Quit       bool
	Reset      bool
	Screenshot bool
	ToggleFPS  bool

	Pressed []byte
}

// keyState tracks the last time each movement key was pressed, plus an
// escape sequence cut off at the end of the previous frame's bytes.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time

	pending []byte
}

// maxPending bounds how much of an unterminated escape sequence is carried over.
const maxPending = 16

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	done   chan struct{}
	stop   sync.Once
	state  keyState
	closed bool
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once the reader is exhausted. The goroutine exits
// after the reader ends or StopStream is called, whichever comes first.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
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
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
		now:  time.Now,
	}
}

// StopStream releases the reader goroutine. Bytes still in flight are dropped.
func StopStream(s *Stream) {
	s.stop.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
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

	in := parse(&s.state, buf, s.now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// ResetKeys forgets held movement keys, e.g. after a game restart.
func ResetKeys(s *Stream) {
	s.state = keyState{pending: s.state.pending}
}

// parse applies one frame of raw bytes to the held-key state and returns the frame's input.
// A lone ESC only counts as a key once a frame passes without the rest of a
// sequence arriving. Unknown CSI and SS3 sequences are skipped whole.
func parse(state *keyState, buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	data := buf
	if len(state.pending) > 0 {
		if len(buf) == 0 {
			// Nothing followed: a pending lone ESC was the Escape key.
			if len(state.pending) == 1 {
				in.Quit = true
			}
			state.pending = nil
			return held(state, in, now)
		}
		data = append(state.pending, buf...)
		state.pending = nil
	}

	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != '\x1b' {
			applyByte(state, &in, b, now)
			continue
		}

		n := applySequence(state, &in, data[i+1:], now)
		if n < 0 {
			if rest := data[i:]; len(rest) <= maxPending {
				state.pending = append([]byte(nil), rest...)
			}
			break
		}
		if n == 0 {
			in.Quit = true
			continue
		}
		i += n
	}

	return held(state, in, now)
}

// held fills in the movement keys still inside their hold window.
func held(state *keyState, in Input, now time.Time) Input {
	in.Left = now.Sub(state.left) < keyHoldDuration
	in.Right = now.Sub(state.right) < keyHoldDuration
	in.Up = now.Sub(state.up) < keyHoldDuration
	in.Down = now.Sub(state.down) < keyHoldDuration
	return in
}

// applySequence decodes an escape sequence starting after ESC.
// Returns the number of bytes consumed after ESC, 0 if ESC does not start
// a sequence, or -1 if the sequence is cut off.
func applySequence(state *keyState, in *Input, seq []byte, now time.Time) int {
	if len(seq) == 0 {
		return -1
	}

	switch seq[0] {
	case 'O':
		if len(seq) < 2 {
			return -1
		}
		applyFinal(state, in, seq[1], nil, now)
		return 2
	case '[':
		// Parameter and intermediate bytes run up to a final byte in 0x40-0x7E.
		for j := 1; j < len(seq); j++ {
			if c := seq[j]; c >= 0x40 && c <= 0x7e {
				applyFinal(state, in, c, seq[1:j], now)
				return j + 1
			}
		}
		return -1
	}
	return 0
}

// applyFinal handles a complete CSI or SS3 sequence by its final byte.
// Modified arrows such as ESC [ 1 ; 5 A still move.
func applyFinal(state *keyState, in *Input, final byte, params []byte, now time.Time) {
	switch final {
	case 'A':
		state.up = now
	case 'B':
		state.down = now
	case 'C':
		state.right = now
	case 'D':
		state.left = now
	case 'Q': // F2 (SS3 form)
		if params == nil {
			in.Screenshot = true
		}
	case 'R': // F3 (SS3 form)
		if params == nil {
			in.ToggleFPS = true
		}
	case '~': // F2 and F3 as "ESC [ 12 ~" and "ESC [ 13 ~"
		switch string(params) {
		case "12":
			in.Screenshot = true
		case "13":
			in.ToggleFPS = true
		}
	}
}

// applyByte handles a single key byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'r', 'R':
		in.Reset = true
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	}
}
