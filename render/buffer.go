package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// RenderBuffer is a compositor of cells flushed to the screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to blank on black
func (b *RenderBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RGBWhite, Bg: RGBBlack}
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get returns the cell at x, y; out of bounds yields a blank cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// SetBg replaces the background of a cell
func (b *RenderBuffer) SetBg(x, y int, bg RGB) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bg = bg
	}
}

// BlendBg blends c over the existing background
func (b *RenderBuffer) BlendBg(x, y int, c RGB, opacity float64) {
	if b.inBounds(x, y) {
		cell := &b.cells[y*b.width+x]
		cell.Bg = Fade(cell.Bg, c, opacity)
	}
}

// Set writes a glyph whose color is faded against the cell background by opacity
func (b *RenderBuffer) Set(x, y int, r rune, fg RGB, opacity float64) {
	if !b.inBounds(x, y) || opacity <= 0 {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Rune = r
	cell.Fg = Fade(cell.Bg, fg, opacity)
	cell.Bold = false
}

// WriteString writes text starting at x, returning the column after the last glyph
// Wide runes take two columns
func (b *RenderBuffer) WriteString(x, y int, s string, fg RGB, bold bool) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if b.inBounds(x, y) {
			cell := &b.cells[y*b.width+x]
			cell.Rune = r
			cell.Fg = fg
			cell.Bold = bold
		}
		x += w
	}
	return x
}

// WriteCentered writes text centered on row y
func (b *RenderBuffer) WriteCentered(y int, s string, fg RGB, bold bool) {
	x := (b.width - runewidth.StringWidth(s)) / 2
	b.WriteString(max(0, x), y, s, fg, bold)
}

// Flush copies the buffer to the screen shifted by dx, dy
func (b *RenderBuffer) Flush(screen tcell.Screen, mode ColorMode, dx, dy int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Fg, mode)).
				Background(toTcell(cell.Bg, mode)).
				Bold(cell.Bold)
			screen.SetContent(x+dx, y+dy, cell.Rune, nil, style)
		}
	}
}
