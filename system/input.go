package system

import (
	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/parameter"
)

// InputSystem applies the per-frame aim, fire and mode cycle actions
// Start and Reset are session-level and handled before the tick
type InputSystem struct {
	world   *engine.World
	enabled bool
}

func NewInputSystem(world *engine.World) engine.System {
	s := &InputSystem{world: world}
	s.Init()
	return s
}

func (s *InputSystem) Init() {
	s.enabled = true
}

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Priority() int { return parameter.PriorityInput }

func (s *InputSystem) Update() {
	// Aim, fire and cycling only apply to a live session
	if !s.enabled || s.world.Phase != engine.PhasePlaying {
		return
	}

	in := s.world.Resources.Input
	player := &s.world.Player

	if angle, ok := in.AimAngle(player.Pos); ok {
		player.Angle = angle
	}

	if in.Fire {
		bullets := Shoot(player, s.world.Resources.Time.Elapsed)
		if len(bullets) > 0 {
			s.world.Bullets = append(s.world.Bullets, bullets...)
			s.world.PushEvent(event.EventShotFired, &event.ShotFiredPayload{
				Mode:    player.ShootingMode.String(),
				Bullets: len(bullets),
			})
		}
	}

	if in.Cycle != 0 {
		CycleMode(s.world, in.Cycle)
	}
}

// CycleMode steps the shooting mode once per wheel notch, capped by the unlocked maximum
func CycleMode(w *engine.World, steps int) {
	dir := 1
	if steps < 0 {
		dir, steps = -1, -steps
	}

	p := &w.Player
	limit := component.MaxUnlockedMode(p.Level, p.HasRadialMode)
	mode := p.ShootingMode
	for range steps {
		mode = mode.Cycle(dir, limit)
	}
	setShootingMode(w, mode)
}
