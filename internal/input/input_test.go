package input

import (
	"bufio"
	"bytes"
	"testing"
	"time"
)

func testStream() *Stream {
	return &Stream{bindings: DefaultBindings(), nav: navTimes{numberVal: -1}}
}

func TestBothSeatsReadSimultaneously(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte("dj"), t0)
	f := s.frameAt(t0, nil)

	if !f.Players[0].Right {
		t.Fatalf("left seat right not held after 'd'")
	}
	if !f.Players[1].Left {
		t.Fatalf("right seat left not held after 'j'")
	}
	if f.Players[0].Left || f.Players[1].Right {
		t.Fatalf("key bled into the wrong seat: %+v", f.Players)
	}
}

func TestAllActionsReachTheirSeat(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte("wsadrfgtv"), t0)
	p0 := s.frameAt(t0, nil).Players[0]
	if !p0.Up || !p0.Down || !p0.Left || !p0.Right || !p0.Jump || !p0.Crouch || !p0.Dash || !p0.Shoot || !p0.ReturnNormal {
		t.Fatalf("left seat missing actions: %+v", p0)
	}

	s = testStream()
	s.parseBytes([]byte("ikjluopym"), t0)
	p1 := s.frameAt(t0, nil).Players[1]
	if !p1.Up || !p1.Down || !p1.Left || !p1.Right || !p1.Jump || !p1.Crouch || !p1.Dash || !p1.Shoot || !p1.ReturnNormal {
		t.Fatalf("right seat missing actions: %+v", p1)
	}
}

func TestUppercaseFoldsToBinding(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte("W"), t0)
	if !s.frameAt(t0, nil).Players[0].Up {
		t.Fatalf("'W' did not register as left seat up")
	}
}

func TestMovementHoldExpires(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte("d"), t0)
	if !s.frameAt(t0, nil).Players[0].Right {
		t.Fatalf("right not held immediately after press")
	}
	later := t0.Add(moveHoldDuration + time.Millisecond)
	if s.frameAt(later, nil).Players[0].Right {
		t.Fatalf("right still held past the movement window")
	}
}

func TestShootHoldBridgesRepeatDelay(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	// One byte, then silence through a typical terminal repeat delay.
	s.parseBytes([]byte("t"), t0)
	if !s.frameAt(t0.Add(500*time.Millisecond), nil).Players[0].Shoot {
		t.Fatalf("shoot dropped during the repeat delay gap")
	}

	// A repeat byte keeps the hold alive.
	t1 := t0.Add(510 * time.Millisecond)
	s.parseBytes([]byte("t"), t1)
	if !s.frameAt(t1.Add(400*time.Millisecond), nil).Players[0].Shoot {
		t.Fatalf("shoot dropped between repeat bytes")
	}

	// Silence for the full window reads as a release.
	if s.frameAt(t1.Add(shootHoldDuration+time.Millisecond), nil).Players[0].Shoot {
		t.Fatalf("shoot still held after release")
	}
}

func TestArrowSequenceNavigatesWithoutEscape(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte{'\x1b', '[', 'B'}, t0)
	f := s.frameAt(t0, nil)
	if !f.Nav.Down {
		t.Fatalf("down arrow not recognized")
	}
	if f.Nav.Escape {
		t.Fatalf("arrow sequence leaked a lone escape")
	}
}

func TestLoneEscapeRegisters(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte{'\x1b'}, t0)
	if !s.frameAt(t0, nil).Nav.Escape {
		t.Fatalf("lone escape byte not recognized")
	}
}

func TestDigitShortcut(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte{'3'}, t0)
	if got := s.frameAt(t0, nil).Nav.Number; got != 3 {
		t.Fatalf("number = %d, want 3", got)
	}
	later := t0.Add(navHoldDuration + time.Millisecond)
	if got := s.frameAt(later, nil).Nav.Number; got != -1 {
		t.Fatalf("stale number = %d, want -1", got)
	}
}

func TestResetRequiresFreshPress(t *testing.T) {
	s := testStream()
	t0 := time.Now()

	s.parseBytes([]byte("t\r"), t0)
	s.Reset()

	f := s.frameAt(t0, nil)
	if f.Players[0].Shoot || f.Nav.Enter {
		t.Fatalf("key state survived reset: %+v", f)
	}
}

func TestStartStreamDeliversBytesAndCloses(t *testing.T) {
	s := StartStream(bufio.NewReader(bytes.NewBufferString("d")), DefaultBindings())

	sawRight := false
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		f := s.ReadFrame()
		if f.Players[0].Right {
			sawRight = true
		}
		if s.Closed() && sawRight {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("stream did not deliver byte and close: sawRight=%v closed=%v", sawRight, s.Closed())
}
