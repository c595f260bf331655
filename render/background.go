package render

import (
	"math"

	"github.com/lixenwraith/archon/vmath"
)

// BackgroundLayer paints the wave theme gradient, nebulae and the star field
type BackgroundLayer struct{}

func (BackgroundLayer) Priority() RenderPriority { return PriorityBackground }

func (BackgroundLayer) Render(ctx Context, buf *RenderBuffer) {
	snap := ctx.Snap
	theme := themes[vmath.ClampInt(int(snap.Theme), 0, len(themes)-1)]
	w, h := buf.Size()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetBg(x, y, theme.From.BlendRgb(theme.To, gradientAt(theme.Shape, x, y, w, h)))
		}
	}

	for _, n := range snap.Nebulae {
		ctx.View.CellsInCircle(vmath.Circle{X: n.Pos.X, Y: n.Pos.Y, R: n.Radius}, func(x, y int) {
			buf.BlendBg(x, y, RGBNebula, n.Opacity)
		})
	}

	for _, s := range snap.Stars {
		x, y, ok := ctx.View.ToCell(s.Pos)
		if !ok {
			continue
		}
		glyph := '.'
		if s.Radius >= 2 {
			glyph = '+'
		}
		// Smaller stars read dimmer
		buf.Set(x, y, glyph, RGBWhite, 0.35+0.25*s.Radius)
	}
}

// gradientAt returns the gradient parameter of a cell in [0, 1]
func gradientAt(shape GradientShape, x, y, w, h int) float64 {
	fx := float64(x) / float64(max(1, w-1))
	fy := float64(y) / float64(max(1, h-1))
	switch shape {
	case GradientRadial:
		dx, dy := fx-0.5, fy-0.5
		return min(1, math.Hypot(dx, dy)/math.Sqrt2*2)
	case GradientDiagonal:
		return (fx + fy) / 2
	default:
		return fy
	}
}
