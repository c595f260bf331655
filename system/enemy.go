package system

import (
	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/physics"
	"github.com/lixenwraith/archon/vmath"
)

// EnemySystem drives archons: seek, weave, fire, and their collisions
// Hostile bullets are resolved against the player here, once per tick
type EnemySystem struct {
	world   *engine.World
	enabled bool
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{world: world}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.enabled = true
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) Update() {
	if !s.enabled || s.world.Phase != engine.PhasePlaying {
		return
	}

	w := s.world
	kept := w.Enemies[:0]
	for i := range w.Enemies {
		e := w.Enemies[i]
		if s.step(&e) {
			kept = append(kept, e)
		}
	}
	clear(w.Enemies[len(kept):])
	w.Enemies = kept

	resolveHostileFire(w)
}

// step updates one enemy and resolves its collisions, returning false if it is gone
func (s *EnemySystem) step(e *component.Enemy) bool {
	w := s.world
	if w.Phase != engine.PhasePlaying {
		// Session ended mid-pass: freeze the remaining enemies as they are
		return true
	}

	target := w.Player.Pos
	profile := e.Tier.Profile()

	if next, ok := physics.Seek(e.Pos, target, profile.Speed); ok {
		if profile.Weaves {
			next = next.Add(physics.Weave(w.Resources.Time.Elapsed))
		}
		e.Pos = next
	}

	if profile.FireInterval > 0 {
		e.AttackTimer++
		if e.AttackTimer > profile.FireInterval {
			e.AttackTimer = 0
			angle := vmath.AngleTo(e.Pos, target)
			w.Bullets = append(w.Bullets, component.NewBullet(e.Pos, angle, parameter.EnemyBulletSpeed, component.SourceEnemy))
		}
	}

	if e.DamageFlash > 0 {
		e.DamageFlash--
	}

	// Body contact consumes the enemy without score
	if !w.Player.Invincible && vmath.Overlaps(w.Player.Circle(), e.Circle()) {
		damagePlayer(w, event.HitEnemyBody, parameter.DamageEnemyBody)
		return false
	}

	return !hitEnemy(w, e)
}
