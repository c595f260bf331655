package render

import (
	"github.com/lixenwraith/archon/input"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// Viewport maps arena units onto the terminal grid
// The arena is stretched over the whole screen; terminal cells are about twice as tall as wide,
// so the 4:3 arena looks right on a typical 80x30 terminal
type Viewport struct {
	Cols, Rows int
}

// NewViewport fits the arena into a screen of the given size
func NewViewport(width, height int) Viewport {
	return Viewport{Cols: max(1, width), Rows: max(1, height)}
}

// CellWidth returns arena units per column
func (v Viewport) CellWidth() float64 {
	return parameter.ArenaWidth / float64(v.Cols)
}

// CellHeight returns arena units per row
func (v Viewport) CellHeight() float64 {
	return parameter.ArenaHeight / float64(v.Rows)
}

// ToCell converts an arena position to a cell, ok is false outside the grid
func (v Viewport) ToCell(pos vmath.Vec2) (x, y int, ok bool) {
	if pos.X < 0 || pos.Y < 0 {
		return 0, 0, false
	}
	x = int(pos.X / v.CellWidth())
	y = int(pos.Y / v.CellHeight())
	return x, y, x < v.Cols && y < v.Rows
}

// ToArena converts a cell to the arena position of its center
func (v Viewport) ToArena(x, y int) (vmath.Vec2, bool) {
	if x < 0 || y < 0 || x >= v.Cols || y >= v.Rows {
		return vmath.Vec2{}, false
	}
	return vmath.Vec2{
		X: (float64(x) + 0.5) * v.CellWidth(),
		Y: (float64(y) + 0.5) * v.CellHeight(),
	}, true
}

// PointerMapper adapts the viewport for the input collector
func (v Viewport) PointerMapper() input.PointerMapper {
	return v.ToArena
}

// CellsInCircle visits every cell whose center lies inside the arena circle
func (v Viewport) CellsInCircle(c vmath.Circle, fn func(x, y int)) {
	cw, ch := v.CellWidth(), v.CellHeight()
	x0 := max(0, int((c.X-c.R)/cw))
	x1 := min(v.Cols-1, int((c.X+c.R)/cw))
	y0 := max(0, int((c.Y-c.R)/ch))
	y1 := min(v.Rows-1, int((c.Y+c.R)/ch))
	r2 := c.R * c.R

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x)+0.5)*cw - c.X
			dy := (float64(y)+0.5)*ch - c.Y
			if dx*dx+dy*dy <= r2 {
				fn(x, y)
			}
		}
	}
}
