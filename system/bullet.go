package system

import (
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// BulletSystem prunes off-arena bullets and moves the rest
// Bullets travel in a straight line with the velocity fixed at creation
type BulletSystem struct {
	world   *engine.World
	enabled bool
}

func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{world: world}
	s.Init()
	return s
}

func (s *BulletSystem) Init() {
	s.enabled = true
}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Priority() int { return parameter.PriorityBullet }

func (s *BulletSystem) Update() {
	if !s.enabled || s.world.Phase != engine.PhasePlaying {
		return
	}

	// Prune before moving: a bullet leaving this tick survives one more update outside
	kept := s.world.Bullets[:0]
	for _, b := range s.world.Bullets {
		if vmath.InsideRect(b.Pos.X, b.Pos.Y, parameter.ArenaWidth, parameter.ArenaHeight) {
			kept = append(kept, b)
		}
	}
	clear(s.world.Bullets[len(kept):])
	s.world.Bullets = kept

	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		b.Pos = b.Pos.Add(b.Vel)
	}
}
