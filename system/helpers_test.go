package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/vmath"
)

// newPlayingWorld returns a world already in the Playing phase with its events drained
func newPlayingWorld() *engine.World {
	w := engine.NewWorld(engine.NewResources(42, zerolog.Nop()))
	w.TransitionPhase(engine.PhasePlaying)
	w.Resources.Events.Clear()
	return w
}

func countEvents(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func playerBulletAt(pos vmath.Vec2) component.Bullet {
	return component.Bullet{Pos: pos, Radius: 5, Source: component.SourcePlayer}
}

func hostileBulletAt(pos vmath.Vec2, source component.BulletSource) component.Bullet {
	return component.Bullet{Pos: pos, Radius: 7, Source: source}
}

func zeroLogger() zerolog.Logger {
	return zerolog.Nop()
}
