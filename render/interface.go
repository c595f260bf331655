package render

import "github.com/lixenwraith/archon/arena"

// Layer draws one slice of the snapshot into the buffer
type Layer interface {
	Priority() RenderPriority
	Render(ctx Context, buf *RenderBuffer)
}

// Context is the per-frame input shared by every layer
type Context struct {
	Snap *arena.Snapshot
	View Viewport
}
