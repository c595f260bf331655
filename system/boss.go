package system

import (
	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/physics"
	"github.com/lixenwraith/archon/vmath"
)

// BossSystem drives the Demiurge: approach, attack cycle, collisions and pendant drops
type BossSystem struct {
	world   *engine.World
	enabled bool
}

func NewBossSystem(world *engine.World) engine.System {
	s := &BossSystem{world: world}
	s.Init()
	return s
}

func (s *BossSystem) Init() {
	s.enabled = true
}

func (s *BossSystem) Name() string { return "boss" }

func (s *BossSystem) Priority() int { return parameter.PriorityBoss }

func (s *BossSystem) Update() {
	if !s.enabled || s.world.Phase != engine.PhasePlaying || s.world.Boss == nil {
		return
	}

	w := s.world
	b := w.Boss

	if b.InvincibleTimer > 0 {
		b.InvincibleTimer--
	}
	if b.DamageCooldown > 0 {
		b.DamageCooldown--
	}
	b.AttackTimer++
	if b.AttackTimer > parameter.BossAttackCycleTicks {
		b.AttackMode = (b.AttackMode + 1) % parameter.BossAttackModes
		b.AttackTimer = 0
	}

	b.Pos = physics.KeepDistance(b.Pos, w.Player.Pos, parameter.BossSpeed, parameter.BossKeepDistance)

	if b.DamageFlash > 0 {
		b.DamageFlash--
	}

	w.Bullets = append(w.Bullets, BossAttackPattern(b, w.Player.Pos)...)

	// Body contact hurts every overlapping tick
	if !w.Player.Invincible && vmath.Overlaps(w.Player.Circle(), b.Circle()) {
		damagePlayer(w, event.HitBossBody, parameter.DamageBossBody)
		if w.Phase != engine.PhasePlaying {
			return
		}
	}

	if s.hitBoss(b) {
		victory(w)
		return
	}

	if w.Pendant == nil && w.Rng().Chance(parameter.PendantSpawnChance) {
		pendant := component.NewPendant(w.Rng())
		w.Pendant = &pendant
		w.PushEvent(event.EventPickupSpawn, &event.PickupPayload{Kind: pendant.Kind.String(), X: pendant.Pos.X, Y: pendant.Pos.Y})
	}
}

// hitBoss applies player bullets while the boss is vulnerable
// The cooldown set by an accepted hit blocks the rest of the pass
// Returns true if the boss died
func (s *BossSystem) hitBoss(b *component.Boss) bool {
	w := s.world
	for j := 0; j < len(w.Bullets) && b.Vulnerable(); {
		bullet := &w.Bullets[j]
		if bullet.IsEnemy() || !vmath.Overlaps(bullet.Circle(), b.Circle()) {
			j++
			continue
		}

		removeBullet(w, j)
		b.Health -= parameter.DamagePlayerBulletBoss
		b.DamageFlash = parameter.DamageFlashTicks
		b.DamageCooldown = parameter.BossDamageCooldownTicks
		w.PushEvent(event.EventBossHit, &event.BossHitPayload{Damage: parameter.DamagePlayerBulletBoss, Health: b.Health})

		if b.Health <= 0 {
			return true
		}
	}
	return false
}

// BossAttackPattern returns this tick's volley for the active attack mode
func BossAttackPattern(b *component.Boss, target vmath.Vec2) []component.Bullet {
	aim := vmath.AngleTo(b.Pos, target)

	switch b.AttackMode {
	case component.AttackSpread:
		bullets := make([]component.Bullet, 0, 2*parameter.BossSpreadHalfCount+1)
		for i := -parameter.BossSpreadHalfCount; i <= parameter.BossSpreadHalfCount; i++ {
			angle := aim + float64(i)*parameter.BossSpreadStep
			bullets = append(bullets, component.NewBullet(b.Pos, angle, parameter.BossSpreadSpeed, component.SourceBoss))
		}
		return bullets
	case component.AttackBarrage:
		bullets := make([]component.Bullet, parameter.BossBarrageCount)
		for i := range bullets {
			angle := float64(i) * parameter.BossBarrageStep
			bullets[i] = component.NewBullet(b.Pos, angle, parameter.BossBarrageSpeed, component.SourceBoss)
		}
		return bullets
	default:
		return []component.Bullet{
			component.NewBullet(b.Pos, aim, parameter.BossAimedSpeed, component.SourceBoss),
		}
	}
}
