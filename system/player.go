package system

import (
	"time"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/physics"
)

// PlayerSystem moves the player and runs its timers
// In Victory only the transcendence animation advances
type PlayerSystem struct {
	world   *engine.World
	enabled bool
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.enabled = true
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}

	switch s.world.Phase {
	case engine.PhasePlaying:
		s.move()
		s.tickFlash()
		s.tickTranscendence()
		s.tickInvincibility()
	case engine.PhaseVictory:
		s.tickFlash()
		s.tickTranscendence()
	}
}

func (s *PlayerSystem) move() {
	in := s.world.Resources.Input
	p := &s.world.Player
	steer := physics.Steer{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}
	half := parameter.PlayerSize / 2
	p.Pos = physics.MoveClamped(p.Pos, steer, p.Speed(), half, half)
}

func (s *PlayerSystem) tickFlash() {
	if s.world.Player.DamageFlash > 0 {
		s.world.Player.DamageFlash--
	}
}

func (s *PlayerSystem) tickTranscendence() {
	t := &s.world.Player.Transcendence
	if !t.Active {
		return
	}
	t.Timer++
	t.Scale += parameter.TranscendenceScaleStep
	t.Opacity = max(0, t.Opacity-parameter.TranscendenceFadeStep)

	if t.Timer > parameter.TranscendenceTicks {
		s.world.TranscendenceComplete = true
	}
}

func (s *PlayerSystem) tickInvincibility() {
	p := &s.world.Player
	if !p.Invincible {
		return
	}
	p.InvincibleTimer--
	if p.InvincibleTimer > 0 {
		return
	}
	p.Invincible = false
	p.InvincibleTimer = 0
	s.world.Announce(parameter.AnnounceInvulnerabilityFades)
	s.world.PushEvent(event.EventInvulnerabilityFaded, nil)
}

// Shoot returns the bullets of one trigger pull at session time now
// Rapid and Radial are rate limited; a refused pull returns nil and leaves the shot clock untouched
func Shoot(p *component.Player, now time.Duration) []component.Bullet {
	if !p.ShotReady(now) {
		return nil
	}
	p.MarkShot(now)

	switch p.ShootingMode {
	case component.ModeTriple:
		return []component.Bullet{
			component.NewBullet(p.Pos, p.Angle-parameter.ShotTripleSpread, parameter.BulletSpeed, component.SourcePlayer),
			component.NewBullet(p.Pos, p.Angle, parameter.BulletSpeed, component.SourcePlayer),
			component.NewBullet(p.Pos, p.Angle+parameter.ShotTripleSpread, parameter.BulletSpeed, component.SourcePlayer),
		}
	case component.ModeRapid:
		return []component.Bullet{
			component.NewBullet(p.Pos, p.Angle, parameter.BulletRapidSpeed, component.SourcePlayer),
		}
	case component.ModeRadial:
		// Fixed angles from 0 rad, facing is ignored
		bullets := make([]component.Bullet, parameter.ShotRadialCount)
		for i := range bullets {
			bullets[i] = component.NewBullet(p.Pos, float64(i)*parameter.ShotRadialStep, parameter.BulletRadialSpeed, component.SourcePlayer)
		}
		return bullets
	default:
		return []component.Bullet{
			component.NewBullet(p.Pos, p.Angle, parameter.BulletSpeed, component.SourcePlayer),
		}
	}
}
