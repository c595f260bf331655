package system

import (
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/parameter"
)

// EffectSystem decays the announcement banner and the screen shake
type EffectSystem struct {
	world   *engine.World
	enabled bool
}

func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{world: world}
	s.Init()
	return s
}

func (s *EffectSystem) Init() {
	s.enabled = true
}

func (s *EffectSystem) Name() string { return "effect" }

func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }

func (s *EffectSystem) Update() {
	if !s.enabled {
		return
	}
	if p := s.world.Phase; p != engine.PhasePlaying && p != engine.PhaseVictory {
		return
	}

	s.world.Shake.Decay()
	s.world.Announcement.Decay()
}
