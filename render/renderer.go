package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archon/arena"
)

// Renderer composites snapshot layers into a buffer and flushes it to a tcell screen
type Renderer struct {
	screen tcell.Screen
	mode   ColorMode
	buf    *RenderBuffer
	view   Viewport
	layers []Layer
}

// NewRenderer creates a renderer with the default layer stack sized to the screen
func NewRenderer(screen tcell.Screen, mode ColorMode) *Renderer {
	r := &Renderer{
		screen: screen,
		mode:   mode,
		buf:    NewRenderBuffer(0, 0),
	}
	r.AddLayer(BackgroundLayer{})
	r.AddLayer(PickupLayer{})
	r.AddLayer(BulletLayer{})
	r.AddLayer(EnemyLayer{})
	r.AddLayer(BossLayer{})
	r.AddLayer(PlayerLayer{})
	r.AddLayer(ParticleLayer{})
	r.AddLayer(HUDLayer{})
	r.AddLayer(OverlayLayer{})
	r.Resize()
	return r
}

// AddLayer registers a layer, keeping the stack in priority order
func (r *Renderer) AddLayer(l Layer) {
	r.layers = append(r.layers, l)
	sort.SliceStable(r.layers, func(i, j int) bool {
		return r.layers[i].Priority() < r.layers[j].Priority()
	})
}

// Resize refits buffer and viewport to the current screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.buf.Resize(w, h)
	r.view = NewViewport(w, h)
}

// Viewport returns the current arena to screen mapping
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Buffer exposes the composited frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Draw renders one snapshot and shows it
func (r *Renderer) Draw(snap *arena.Snapshot) {
	r.buf.Clear()
	ctx := Context{Snap: snap, View: r.view}
	for _, l := range r.layers {
		l.Render(ctx, r.buf)
	}

	dx, dy := shakeOffset(snap, r.view)
	r.screen.Clear()
	r.buf.Flush(r.screen, r.mode, dx, dy)
	r.screen.Show()
}

// shakeOffset jitters the frame by the shake intensity, in cells
func shakeOffset(snap *arena.Snapshot, view Viewport) (int, int) {
	if snap.Shake.Timer <= 0 || snap.Shake.Intensity <= 0 {
		return 0, 0
	}
	f := float64(snap.Frame)
	ox := snap.Shake.Intensity * 0.5 * math.Sin(f*1.7)
	oy := snap.Shake.Intensity * 0.5 * math.Cos(f*2.3)
	return int(math.Round(ox / view.CellWidth())), int(math.Round(oy / view.CellHeight()))
}
