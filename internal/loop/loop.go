// Package loop runs one terminal session: the title and info screens
// plus the per-tick match cycle of input sampling, simulation and
// drawing. A session owns its reader, writer and input stream, so the
// same loop serves a local terminal and an SSH connection.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomaskol/termduel/internal/bot"
	"github.com/tomaskol/termduel/internal/draw"
	"github.com/tomaskol/termduel/internal/input"
	"github.com/tomaskol/termduel/internal/match"
	"github.com/tomaskol/termduel/internal/object"
)

// dt is the fixed simulation timestep in seconds.
const dt = 1.0 / float64(tickRate)

// screenID identifies which screen the session is showing.
type screenID int

const (
	screenMenu screenID = iota
	screenControls
	screenPowerups
	screenMatch
)

// arenaPresets are the selectable arena sizes, cycled by the menu.
var arenaPresets = []object.Arena{object.ArenaSmall, object.ArenaMedium, object.ArenaLarge}

// Options configures a session.
type Options struct {
	// TermSizeFunc reports the terminal dimensions. Defaults to the
	// size of os.Stdout.
	TermSizeFunc draw.TermSizeFunc

	// Renderer styles output for this session's terminal. Defaults to
	// the process-wide renderer, which detects stdout.
	Renderer *lipgloss.Renderer

	// Seed fixes powerup and bot randomness. Zero keeps a time-based
	// seed.
	Seed int64

	// Arena preselects an arena preset in the menu. Zero keeps the
	// default.
	Arena object.Arena

	// VsBot starts the session directly in a match against the bot.
	VsBot bool
}

// Session is one connected terminal running the game.
type Session struct {
	reader   *bufio.Reader
	writer   io.Writer
	stream   *input.Stream
	sizeFunc draw.TermSizeFunc
	palette  draw.Palette
	cw       *draw.ChunkWriter

	screen    screenID
	selection int
	arenaIdx  int
	seed      int64
	running   bool

	// Match state, valid while screen == screenMatch.
	duel      *match.Match
	canvas    *draw.Canvas
	prevSnap  match.Snapshot
	prevPhase match.Phase
	seatBot   *bot.Bot

	// Edge detection for navigation keys.
	prevNav input.Nav
	prevP1  input.Snapshot

	termW, termH int
}

// Run drives a session until the player quits or the reader ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	s := &Session{
		reader:   r,
		writer:   w,
		stream:   input.StartStream(r, input.DefaultBindings()),
		sizeFunc: sizeFunc,
		palette:  draw.NewPalette(renderer),
		cw:       draw.NewChunkWriter(w, 0, 0),
		arenaIdx: arenaIndex(opts.Arena),
		seed:     opts.Seed,
		running:  true,
	}
	s.prevNav.Number = -1

	if opts.VsBot {
		s.startMatch(true)
	}

	return s.run()
}

// run is the session's tick loop: input, update, draw, sleep.
func (s *Session) run() error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	prevScreen := s.screen

	for s.running {
		tickStart := time.Now()

		frame := s.stream.ReadFrame()
		if s.stream.Closed() {
			break
		}
		s.updateSize()

		switch s.screen {
		case screenMenu:
			s.updateMenu(frame)
		case screenControls, screenPowerups:
			s.updateInfo(frame)
		case screenMatch:
			s.updateMatch(frame)
		}

		if s.screen != prevScreen {
			// A fresh screen starts from a clean terminal and
			// released keys.
			draw.ClearScreen(s.writer)
			s.stream.Reset()
			s.prevNav = input.Nav{Number: -1}
			s.prevP1 = input.Snapshot{}
			prevScreen = s.screen
		}

		if !s.running {
			break
		}

		var err error
		switch s.screen {
		case screenMenu:
			err = s.drawMenu()
		case screenControls:
			err = s.drawInfo(controlsTitle, controlsLines)
		case screenPowerups:
			err = s.drawInfo(powerupsTitle, powerupsLines)
		case screenMatch:
			err = s.drawMatch()
		}
		if err != nil {
			return err
		}

		elapsed := time.Since(tickStart)
		if elapsed < tickTime {
			time.Sleep(tickTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// updateSize polls the terminal dimensions and clears residual content
// when they change.
func (s *Session) updateSize() {
	w, h, err := s.sizeFunc()
	if err != nil || (w == s.termW && h == s.termH) {
		return
	}
	s.termW, s.termH = w, h
	draw.ClearScreen(s.writer)
	s.layoutCanvas()
}

// layoutCanvas centers the match frame on the terminal. Screens other
// than the match are anchored top-left.
func (s *Session) layoutCanvas() {
	if s.canvas == nil {
		return
	}
	fw, fh := s.canvas.Size()
	offCol := (s.termW - fw) / 2
	if offCol < 0 {
		offCol = 0
	}
	offRow := (s.termH - fh) / 2
	if offRow < 0 {
		offRow = 0
	}
	s.canvas.SetOffset(offCol, offRow)
}

// startMatch builds a fresh match on the selected arena and switches
// to the match screen.
func (s *Session) startMatch(vsBot bool) {
	cfg := match.DefaultConfig()
	cfg.Arena = arenaPresets[s.arenaIdx]
	cfg.Seed = s.seed
	if vsBot {
		cfg.Names[1] = "BOT"
		s.seatBot = bot.New(1, s.seed)
	} else {
		s.seatBot = nil
	}

	s.duel = match.New(cfg)
	s.prevSnap = s.duel.Snapshot()
	s.prevPhase = s.duel.Phase()
	s.canvas = draw.NewCanvas(cfg.Arena.Width+3, cfg.Arena.Height+6, s.palette)
	s.layoutCanvas()
	s.screen = screenMatch
}

// endMatch abandons the current match and returns to the menu.
func (s *Session) endMatch() {
	s.duel = nil
	s.seatBot = nil
	s.canvas = nil
	s.screen = screenMenu
}

// updateMatch advances the simulation by one tick. Escape leaves for
// the menu between ticks, never mid-tick.
func (s *Session) updateMatch(frame input.Frame) {
	e := s.pressEdges(frame)
	if e.escape {
		s.endMatch()
		return
	}

	acts := frame.Players
	if s.seatBot != nil {
		if s.prevSnap.Phase == match.PhaseIntermission {
			// The human decides when the next round starts.
			acts[1] = input.Snapshot{}
		} else {
			acts[1] = s.seatBot.Act(s.prevSnap)
		}
	}

	s.duel.Step(dt, acts)
	snap := s.duel.Snapshot()

	if snap.Phase == match.PhaseIntermission && s.prevPhase != match.PhaseIntermission {
		// Starting the next round takes a fresh key press.
		s.stream.Reset()
	}
	s.prevPhase = snap.Phase
	s.prevSnap = snap
}

// navPress holds rising edges of the shared navigation keys for one
// tick.
type navPress struct {
	up, down     bool
	enter        bool
	escape, quit bool
	number       int // -1 when no fresh digit
}

// pressEdges derives key press edges from consecutive frames. Menu
// up/down also accept the left seat's W/S cluster.
func (s *Session) pressEdges(frame input.Frame) navPress {
	cur := frame.Nav
	p1 := frame.Players[0]
	e := navPress{
		up:     cur.Up && !s.prevNav.Up || p1.Up && !s.prevP1.Up,
		down:   cur.Down && !s.prevNav.Down || p1.Down && !s.prevP1.Down,
		enter:  cur.Enter && !s.prevNav.Enter,
		escape: cur.Escape && !s.prevNav.Escape,
		quit:   cur.Quit && !s.prevNav.Quit,
		number: -1,
	}
	if cur.Number >= 0 && s.prevNav.Number < 0 {
		e.number = cur.Number
	}
	s.prevNav = cur
	s.prevP1 = p1
	return e
}

// arenaIndex finds the preset index for an arena, defaulting to the
// large preset.
func arenaIndex(a object.Arena) int {
	for i, preset := range arenaPresets {
		if preset == a {
			return i
		}
	}
	return len(arenaPresets) - 1
}
