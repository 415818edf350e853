package object

import (
	"fmt"

	"github.com/tomaskol/termduel/internal/physics"
)

// Arena is the logical playfield grid. Entity positions are sub-cell
// float coordinates inside [0,Width-1] x [0,Height-1]; rendering rounds
// them to cells.
type Arena struct {
	Width  int
	Height int
}

// Arena presets selectable at session start.
var (
	ArenaSmall  = Arena{Width: 30, Height: 10}
	ArenaMedium = Arena{Width: 44, Height: 14}
	ArenaLarge  = Arena{Width: 70, Height: 24}
)

// String formats the arena dimensions for menus and logs.
func (a Arena) String() string {
	return fmt.Sprintf("%dx%d", a.Width, a.Height)
}

// Clamp restricts a position to the arena bounds. There is no
// wraparound.
func (a Arena) Clamp(x, y float64) (float64, float64) {
	return physics.Clamp(x, 0, float64(a.Width-1)), physics.Clamp(y, 0, float64(a.Height-1))
}

// Contains reports whether a position lies within the arena bounds.
func (a Arena) Contains(x, y float64) bool {
	return x >= 0 && x <= float64(a.Width-1) && y >= 0 && y <= float64(a.Height-1)
}

// ContainsCell reports whether an integer cell lies within the arena.
func (a Arena) ContainsCell(x, y int) bool {
	return x >= 0 && x < a.Width && y >= 0 && y < a.Height
}
