package system

import (
	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// PickupSystem animates power-ups and consumes them on a player bullet hit
type PickupSystem struct {
	world   *engine.World
	enabled bool
}

func NewPickupSystem(world *engine.World) engine.System {
	s := &PickupSystem{world: world}
	s.Init()
	return s
}

func (s *PickupSystem) Init() {
	s.enabled = true
}

func (s *PickupSystem) Name() string { return "pickup" }

func (s *PickupSystem) Priority() int { return parameter.PriorityPickup }

func (s *PickupSystem) Update() {
	if !s.enabled || s.world.Phase != engine.PhasePlaying {
		return
	}

	if wings := s.world.Wings; wings != nil {
		wings.Bob()
		s.collide(wings)
		// Missed chance: the wings leave once the wave moves on
		if s.world.Wings != nil && s.world.Wave > parameter.WingsWave {
			s.world.Wings = nil
		}
	}

	if pendant := s.world.Pendant; pendant != nil {
		pendant.Bob()
		s.collide(pendant)
	}
}

// collide consumes the first player bullet touching the pickup
func (s *PickupSystem) collide(p *component.Pickup) {
	for j := range s.world.Bullets {
		b := &s.world.Bullets[j]
		if b.IsEnemy() || !vmath.Overlaps(b.Circle(), p.Circle()) {
			continue
		}
		removeBullet(s.world, j)
		collectPickup(s.world, p)
		return
	}
}
