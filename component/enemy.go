package component

import (
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// EnemyTier is the archon variant: Circle, Triangle, Square
type EnemyTier int

const (
	TierCircle EnemyTier = iota
	TierTriangle
	TierSquare
)

// TierProfile holds per-tier behavior, looked up instead of branching on the tier
type TierProfile struct {
	Name         string
	Speed        float64
	FireInterval int  // Attack timer threshold in ticks, 0 = never fires
	Weaves       bool // Adds a lateral oscillation to seeking
}

var tierProfiles = [...]TierProfile{
	TierCircle: {
		Name:         "Circle",
		Speed:        parameter.EnemyTierSpeed[TierCircle],
		FireInterval: parameter.EnemyTierFireInterval[TierCircle],
	},
	TierTriangle: {
		Name:         "Triangle",
		Speed:        parameter.EnemyTierSpeed[TierTriangle],
		FireInterval: parameter.EnemyTierFireInterval[TierTriangle],
	},
	TierSquare: {
		Name:         "Square",
		Speed:        parameter.EnemyTierSpeed[TierSquare],
		FireInterval: parameter.EnemyTierFireInterval[TierSquare],
		Weaves:       true,
	},
}

// Profile returns the behavior table entry of the tier, clamped to known tiers
func (t EnemyTier) Profile() TierProfile {
	return tierProfiles[vmath.ClampInt(int(t), int(TierCircle), int(TierSquare))]
}

func (t EnemyTier) String() string {
	return t.Profile().Name
}

// TierForWave returns min(2, wave/4)
func TierForWave(wave int) EnemyTier {
	return EnemyTier(min(parameter.WaveMaxTier, wave/parameter.WaveTierStep))
}

// Enemy is an archon
type Enemy struct {
	ID          uint64
	Pos         vmath.Vec2
	Tier        EnemyTier
	Health      int
	DamageFlash int
	AttackTimer int
}

// NewEnemy creates a full-health enemy of the given tier
func NewEnemy(id uint64, pos vmath.Vec2, tier EnemyTier) Enemy {
	return Enemy{
		ID:     id,
		Pos:    pos,
		Tier:   tier,
		Health: parameter.EnemyHealth,
	}
}

// Speed returns the tier seek speed
func (e *Enemy) Speed() float64 {
	return e.Tier.Profile().Speed
}

// Circle returns the enemy hit circle
func (e *Enemy) Circle() vmath.Circle {
	return vmath.Circle{X: e.Pos.X, Y: e.Pos.Y, R: parameter.EnemyRadius}
}
