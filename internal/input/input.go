package input

import (
	"bufio"
	"time"
)

// Hold windows: a key counts as held while its last byte arrived within
// the window. Terminal key repeat pauses for several hundred ms after
// the first byte, so the shoot window is wide enough to bridge that gap
// and keep a charge uninterrupted, while movement keys use a short
// window and menu keys an even shorter one so each repeat event reads
// as a fresh press.
const (
	navHoldDuration   = 30 * time.Millisecond
	moveHoldDuration  = 150 * time.Millisecond
	shootHoldDuration = 550 * time.Millisecond
)

// Snapshot is one player's action state for a single tick. Every field
// is level-triggered: true while the bound key is considered held.
type Snapshot struct {
	Up           bool
	Down         bool
	Left         bool
	Right        bool
	Jump         bool
	Crouch       bool
	ReturnNormal bool
	Dash         bool
	Shoot        bool
}

// Nav is the shared navigation state: menu movement, confirm, cancel.
// These keys belong to no player.
type Nav struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Enter  bool
	Space  bool
	Escape bool
	Quit   bool
	Number int // -1 when no digit was pressed recently
}

// Frame is everything the stream read for one tick: both players'
// action snapshots plus the shared navigation keys.
type Frame struct {
	Players [2]Snapshot
	Nav     Nav
	Pressed []byte // Raw bytes drained this frame
}

// Bindings maps keyboard bytes to one player's actions. Bytes are
// matched after folding to lower case.
type Bindings struct {
	Up           byte
	Down         byte
	Left         byte
	Right        byte
	Jump         byte
	Crouch       byte
	ReturnNormal byte
	Dash         byte
	Shoot        byte
}

// DefaultBindings returns the stock same-keyboard layout: WASD cluster
// for the left seat, IJKL cluster for the right seat.
func DefaultBindings() [2]Bindings {
	return [2]Bindings{
		{Up: 'w', Down: 's', Left: 'a', Right: 'd', Jump: 'r', Crouch: 'f', ReturnNormal: 'v', Dash: 'g', Shoot: 't'},
		{Up: 'i', Down: 'k', Left: 'j', Right: 'l', Jump: 'u', Crouch: 'o', ReturnNormal: 'm', Dash: 'p', Shoot: 'y'},
	}
}

// actionTimes tracks the last time each of one player's keys was seen.
type actionTimes struct {
	up, down, left, right      time.Time
	jump, crouch, returnNormal time.Time
	dash, shoot                time.Time
}

// navTimes tracks the last time each shared key was seen.
type navTimes struct {
	up, down, left, right time.Time
	enter, space          time.Time
	escape, quit          time.Time
	number                time.Time
	numberVal             int
}

// Stream delivers input bytes via a channel and tracks per-key
// timestamps so simultaneous holds on one keyboard can be detected.
type Stream struct {
	ch       chan byte
	closed   bool
	bindings [2]Bindings
	players  [2]actionTimes
	nav      navTimes
}

// StartStream spawns a goroutine that reads from r and feeds the
// stream. The goroutine exits when r returns an error.
func StartStream(r *bufio.Reader, bindings [2]Bindings) *Stream {
	s := &Stream{
		ch:       make(chan byte, 128),
		bindings: bindings,
		nav:      navTimes{numberVal: -1},
	}
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

// Closed reports whether the underlying reader has ended. The session
// should shut down once this is true.
func (s *Stream) Closed() bool { return s.closed }

// ReadFrame drains all available bytes (non-blocking), updates key
// state, and returns the frame for this tick.
func (s *Stream) ReadFrame() Frame {
	now := time.Now()
	buf := s.drain()
	s.parseBytes(buf, now)
	return s.frameAt(now, buf)
}

// Reset clears all key state and pending bytes so every key needs a
// fresh press to register again. Called on screen and round
// transitions.
func (s *Stream) Reset() {
	s.players = [2]actionTimes{}
	s.nav = navTimes{numberVal: -1}
	s.drain()
}

// drain empties the channel without blocking.
func (s *Stream) drain() []byte {
	var buf []byte
	if s.closed {
		return buf
	}
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// parseBytes walks the drained bytes, consuming CSI arrow sequences and
// stamping every recognized key.
func (s *Stream) parseBytes(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.nav.up = now
				i += 2
				continue
			case 'B':
				s.nav.down = now
				i += 2
				continue
			case 'C':
				s.nav.right = now
				i += 2
				continue
			case 'D':
				s.nav.left = now
				i += 2
				continue
			}
		}

		s.applyByte(b, now)
	}
}

// applyByte stamps a single key byte into player and nav state.
func (s *Stream) applyByte(b byte, now time.Time) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}

	for pi := range s.bindings {
		bd := s.bindings[pi]
		at := &s.players[pi]
		switch b {
		case bd.Up:
			at.up = now
		case bd.Down:
			at.down = now
		case bd.Left:
			at.left = now
		case bd.Right:
			at.right = now
		case bd.Jump:
			at.jump = now
		case bd.Crouch:
			at.crouch = now
		case bd.ReturnNormal:
			at.returnNormal = now
		case bd.Dash:
			at.dash = now
		case bd.Shoot:
			at.shoot = now
		}
	}

	switch b {
	case '\n', '\r':
		s.nav.enter = now
	case ' ':
		s.nav.space = now
	case '\x1b':
		s.nav.escape = now
	case 'q':
		s.nav.quit = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.nav.number = now
		s.nav.numberVal = int(b - '0')
	}
}

// frameAt builds the tick's frame from key timestamps.
func (s *Stream) frameAt(now time.Time, pressed []byte) Frame {
	frame := Frame{Pressed: pressed}

	for pi := range s.players {
		at := &s.players[pi]
		frame.Players[pi] = Snapshot{
			Up:           heldWithin(at.up, now, moveHoldDuration),
			Down:         heldWithin(at.down, now, moveHoldDuration),
			Left:         heldWithin(at.left, now, moveHoldDuration),
			Right:        heldWithin(at.right, now, moveHoldDuration),
			Jump:         heldWithin(at.jump, now, moveHoldDuration),
			Crouch:       heldWithin(at.crouch, now, moveHoldDuration),
			ReturnNormal: heldWithin(at.returnNormal, now, moveHoldDuration),
			Dash:         heldWithin(at.dash, now, moveHoldDuration),
			Shoot:        heldWithin(at.shoot, now, shootHoldDuration),
		}
	}

	frame.Nav = Nav{
		Up:     heldWithin(s.nav.up, now, navHoldDuration),
		Down:   heldWithin(s.nav.down, now, navHoldDuration),
		Left:   heldWithin(s.nav.left, now, navHoldDuration),
		Right:  heldWithin(s.nav.right, now, navHoldDuration),
		Enter:  heldWithin(s.nav.enter, now, navHoldDuration),
		Space:  heldWithin(s.nav.space, now, navHoldDuration),
		Escape: heldWithin(s.nav.escape, now, navHoldDuration),
		Quit:   heldWithin(s.nav.quit, now, navHoldDuration),
		Number: -1,
	}
	if heldWithin(s.nav.number, now, navHoldDuration) {
		frame.Nav.Number = s.nav.numberVal
	}

	return frame
}

func heldWithin(t, now time.Time, window time.Duration) bool {
	return now.Sub(t) < window
}
