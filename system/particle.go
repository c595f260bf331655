package system

import (
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/parameter"
)

// ParticleSystem fades cosmetic particles and scrolls the star field
// Stars scroll in every phase; particles only while the session is live or celebrating
type ParticleSystem struct {
	world   *engine.World
	enabled bool
}

func NewParticleSystem(world *engine.World) engine.System {
	s := &ParticleSystem{world: world}
	s.Init()
	return s
}

func (s *ParticleSystem) Init() {
	s.enabled = true
}

func (s *ParticleSystem) Name() string { return "particle" }

func (s *ParticleSystem) Priority() int { return parameter.PriorityParticle }

func (s *ParticleSystem) Update() {
	if !s.enabled {
		return
	}

	factor := 1.0
	if s.world.Wave >= parameter.StarFastWave {
		factor = 2
	}
	for i := range s.world.Stars {
		s.world.Stars[i].Scroll(factor)
	}

	if p := s.world.Phase; p != engine.PhasePlaying && p != engine.PhaseVictory {
		return
	}

	kept := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		if p.Step() {
			kept = append(kept, p)
		}
	}
	clear(s.world.Particles[len(kept):])
	s.world.Particles = kept
}
