package draw

import "github.com/charmbracelet/lipgloss"

// StyleID selects one of the fixed palette styles for a cell.
type StyleID uint8

const (
	StylePlain StyleID = iota
	StyleP1
	StyleP1Bold
	StyleP2
	StyleP2Bold
	StyleAccent
	StyleDim
	StyleBold
	styleCount
)

// Palette maps style ids to concrete lipgloss styles. Styles are bound to
// a renderer so color degradation follows the session's terminal profile
// rather than the server's stdout.
type Palette struct {
	styles [styleCount]lipgloss.Style
}

// NewPalette builds the game palette on the given renderer. Player one is
// cyan, player two is magenta, pickups and highlights are yellow.
func NewPalette(r *lipgloss.Renderer) Palette {
	var p Palette
	p.styles[StylePlain] = r.NewStyle()
	p.styles[StyleP1] = r.NewStyle().Foreground(lipgloss.Color("6"))
	p.styles[StyleP1Bold] = r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	p.styles[StyleP2] = r.NewStyle().Foreground(lipgloss.Color("5"))
	p.styles[StyleP2Bold] = r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	p.styles[StyleAccent] = r.NewStyle().Foreground(lipgloss.Color("3"))
	p.styles[StyleDim] = r.NewStyle().Faint(true)
	p.styles[StyleBold] = r.NewStyle().Bold(true)
	return p
}

// DefaultPalette builds the palette on the process-wide default renderer,
// which detects the color profile of stdout.
func DefaultPalette() Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// Style returns the lipgloss style for id. Unknown ids fall back to plain.
func (p Palette) Style(id StyleID) lipgloss.Style {
	if id >= styleCount {
		return p.styles[StylePlain]
	}
	return p.styles[id]
}

// PlayerStyle returns the colored style for a player seat (0 or 1). Bold
// selects the heavier variant used for the player glyph itself.
func PlayerStyle(seat int, bold bool) StyleID {
	if seat == 0 {
		if bold {
			return StyleP1Bold
		}
		return StyleP1
	}
	if bold {
		return StyleP2Bold
	}
	return StyleP2
}
