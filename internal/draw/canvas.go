package draw

import (
	"io"
	"strings"
	"unicode/utf8"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Cell is one terminal character cell: a rune plus the palette style it
// renders with.
type Cell struct {
	Rune  rune
	Style StyleID
}

// Canvas is a fixed-size buffer of styled character cells. Coordinates are
// 0-based with (0, 0) at the top-left cell. Render emits every cell each
// frame, so glyphs left over from the previous frame are overwritten by
// spaces without a full-screen clear (which flickers on slow links).
type Canvas struct {
	width   int
	height  int
	cells   []Cell
	palette Palette

	// Offset for centering the render area when the terminal is larger
	// than the frame. 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf strings.Builder
	runBuf    []rune
	numBuf    [20]byte
}

// NewCanvas creates a cleared canvas with the given cell dimensions.
func NewCanvas(width, height int, palette Palette) *Canvas {
	c := &Canvas{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		palette: palette,
	}
	c.Clear()
	return c
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at
// (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets every cell to a plain space.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Style: StylePlain}
	}
}

// Set places a single styled rune. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, style StyleID) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Style: style}
}

// WriteText places a string starting at (x, y), clipping at the canvas
// edges. Strings are expected to hold single-width runes and no newlines.
func (c *Canvas) WriteText(x, y int, s string, style StyleID) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range s {
		if x >= c.width {
			return
		}
		if x >= 0 {
			c.cells[y*c.width+x] = Cell{Rune: r, Style: style}
		}
		x++
	}
}

// CenterText places a string horizontally centered on row y.
func (c *Canvas) CenterText(y int, s string, style StyleID) {
	c.WriteText((c.width-utf8.RuneCountInString(s))/2, y, s, style)
}

// Render writes the buffer to w. Each row is emitted as one cursor move
// followed by runs of same-styled cells, which keeps escape-sequence
// overhead low. Output is written in chunks for optimal network flow.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.width*c.height + c.height*16)

	for row := 0; row < c.height; row++ {
		appendCursorMove(&c.renderBuf, c.numBuf[:], 1+c.offsetCol, row+1+c.offsetRow)

		base := row * c.width
		for col := 0; col < c.width; {
			style := c.cells[base+col].Style
			end := col + 1
			for end < c.width && c.cells[base+end].Style == style {
				end++
			}
			c.runBuf = c.runBuf[:0]
			for i := col; i < end; i++ {
				c.runBuf = append(c.runBuf, c.cells[base+i].Rune)
			}
			c.renderBuf.WriteString(c.palette.Style(style).Render(string(c.runBuf)))
			col = end
		}
	}

	return writeChunks(w, c.renderBuf.String())
}

// writeChunks writes s to w in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, s string) error {
	for len(s) > 0 {
		chunk := s
		if len(chunk) > maxChunkSize {
			chunk = s[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		s = s[len(chunk):]
	}
	return nil
}
