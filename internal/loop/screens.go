package loop

import (
	"fmt"

	"github.com/tomaskol/termduel/internal/draw"
	"github.com/tomaskol/termduel/internal/input"
)

// menuBanner is the title art shown at the top of the menu.
var menuBanner = []string{
	` _______ ______ _____  __  __ _____  _    _ ______ _      `,
	`|__   __|  ____|  __ \|  \/  |  __ \| |  | |  ____| |     `,
	`   | |  | |__  | |__) | \  / | |  | | |  | | |__  | |     `,
	`   | |  |  __| |  _  /| |\/| | |  | | |  | |  __| | |     `,
	`   | |  | |____| | \ \| |  | | |__| | |__| | |____| |____ `,
	`   |_|  |______|_|  \_\_|  |_|_____/ \____/|______|______|`,
}

const menuSubtitle = "ASCII 3-LAYER DUEL ARENA"

const (
	menuStartMatch = iota
	menuVsBot
	menuArena
	menuControls
	menuPowerups
	menuQuit
	menuOptionCount
)

const menuHint = "Use ↑/↓ or 1-6. Enter to select."

const (
	controlsTitle = "CONTROLS"
	powerupsTitle = "POWERUPS"
)

var controlsLines = []string{
	"P1 Move: W/A/S/D | Jump: R | Crouch: F | Shoot: T | Dash: G | Level Normal: V",
	"P2 Move: I/J/K/L | Jump: U | Crouch: O | Shoot: Y | Dash: P | Level Normal: M",
	"Projectiles only hit enemies on the SAME vertical level.",
	"Jump/Crouch changes glyph size to simulate height.",
	"Hold Shoot to charge: a full charge fires a slower, wider shot.",
	"Dash has cooldown shown in HUD. Shooting has anti-spam cooldown.",
}

var powerupsLines = []string{
	"S = Shotgun (temporary): fires 3 projectiles in a spread.",
	"D = Dash Boost (temporary): drastically reduces dash cooldown.",
	"H = Shield: blocks exactly one incoming bullet.",
	"Powerups spawn over time and disappear if unclaimed.",
}

// menuOptionLabel names one menu entry. The arena entry shows the
// currently selected preset.
func (s *Session) menuOptionLabel(idx int) string {
	switch idx {
	case menuStartMatch:
		return "Start Match"
	case menuVsBot:
		return "Vs Bot"
	case menuArena:
		return fmt.Sprintf("Arena: %s", arenaPresets[s.arenaIdx])
	case menuControls:
		return "Controls"
	case menuPowerups:
		return "Powerups"
	case menuQuit:
		return "Quit"
	}
	return ""
}

// updateMenu handles menu navigation. Digits jump straight to an
// entry and activate it.
func (s *Session) updateMenu(frame input.Frame) {
	e := s.pressEdges(frame)
	switch {
	case e.up:
		s.selection = (s.selection - 1 + menuOptionCount) % menuOptionCount
	case e.down:
		s.selection = (s.selection + 1) % menuOptionCount
	case e.number >= 1 && e.number <= menuOptionCount:
		s.selection = e.number - 1
		s.activateMenu(s.selection)
	case e.enter:
		s.activateMenu(s.selection)
	case e.quit:
		s.running = false
	}
}

func (s *Session) activateMenu(idx int) {
	switch idx {
	case menuStartMatch:
		s.startMatch(false)
	case menuVsBot:
		s.startMatch(true)
	case menuArena:
		s.arenaIdx = (s.arenaIdx + 1) % len(arenaPresets)
	case menuControls:
		s.screen = screenControls
	case menuPowerups:
		s.screen = screenPowerups
	case menuQuit:
		s.running = false
	}
}

// updateInfo handles the controls and powerups screens: any of
// escape or enter returns to the menu.
func (s *Session) updateInfo(frame input.Frame) {
	e := s.pressEdges(frame)
	if e.escape || e.enter {
		s.screen = screenMenu
	}
}

// drawMenu rewrites the whole menu every frame. Rewriting the marker
// column on each option line erases the previous selection without a
// screen clear.
func (s *Session) drawMenu() error {
	for i, line := range menuBanner {
		s.cw.WriteAt(menuTitleCol, menuTitleRow+i, s.palette.Style(draw.StyleAccent).Render(line))
	}
	base := menuTitleRow + len(menuBanner)
	s.cw.WriteAt(menuHintCol, base+1, s.palette.Style(draw.StyleBold).Render(menuSubtitle))

	for i := 0; i < menuOptionCount; i++ {
		marker := " "
		if i == s.selection {
			marker = ">"
		}
		s.cw.WriteAt(menuItemCol, base+4+i, fmt.Sprintf("%s %d. %s", marker, i+1, s.menuOptionLabel(i)))
	}

	s.cw.WriteAt(menuHintCol, base+10, menuHint)
	return s.cw.Flush()
}

// drawInfo renders a titled text screen with the shared return hint.
func (s *Session) drawInfo(title string, lines []string) error {
	s.cw.WriteAt(infoTitleCol, infoTitleRow, s.palette.Style(draw.StyleBold).Render(title))
	row := infoTitleRow + 2
	for _, line := range lines {
		s.cw.WriteAt(infoBodyCol, row, line)
		row++
	}
	s.cw.WriteAt(infoBodyCol, row+2, "Press ESC or Enter to return to menu.")
	return s.cw.Flush()
}
