package component

import (
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// BossAttack is the active boss fire pattern
type BossAttack int

const (
	AttackSpread BossAttack = iota
	AttackBarrage
	AttackAimed
)

func (a BossAttack) String() string {
	switch a {
	case AttackSpread:
		return "Spread"
	case AttackBarrage:
		return "Barrage"
	case AttackAimed:
		return "Aimed"
	default:
		return "Unknown"
	}
}

// Boss is the Demiurge, spawned once all waves are exhausted
type Boss struct {
	Pos         vmath.Vec2
	Health      int
	AttackTimer int
	AttackMode  BossAttack
	DamageFlash int

	// InvincibleTimer is the spawn grace window
	InvincibleTimer int
	// DamageCooldown limits accepted hits to one per window
	DamageCooldown int
}

// NewBoss creates the boss at its spawn point with its grace window armed
func NewBoss() Boss {
	return Boss{
		Pos:             vmath.Vec2{X: parameter.ArenaWidth / 2, Y: parameter.BossSpawnY},
		Health:          parameter.BossHealth,
		InvincibleTimer: parameter.BossSpawnInvincibleTicks,
	}
}

// Vulnerable reports whether a player bullet would be accepted this tick
func (b *Boss) Vulnerable() bool {
	return b.InvincibleTimer <= 0 && b.DamageCooldown <= 0
}

// Circle returns the boss hit circle
func (b *Boss) Circle() vmath.Circle {
	return vmath.Circle{X: b.Pos.X, Y: b.Pos.Y, R: parameter.BossRadius}
}
