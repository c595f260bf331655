package parameter

import (
	"math"
	"time"
)

// Archon (enemy)
const (
	// EnemyRadius is the collision radius of every enemy tier
	EnemyRadius = 20.0

	// EnemyHealth is the starting health of every enemy tier
	EnemyHealth = 50

	// EnemyBulletSpeed is the speed of aimed enemy bullets
	EnemyBulletSpeed = 8.0

	// EnemyWeaveAmplitude is the lateral offset per tick of weaving enemies
	EnemyWeaveAmplitude = 2.0

	// EnemyWeavePeriod is the time scale of the weave oscillation
	EnemyWeavePeriod = 200 * time.Millisecond
)

// Per-tier values, indexed by tier
var (
	// EnemyTierSpeed is the seek speed per tick
	EnemyTierSpeed = [...]float64{2, 3, 4}

	// EnemyTierFireInterval is the attack timer threshold in ticks, 0 means the tier never fires
	EnemyTierFireInterval = [...]int{0, 120, 60}
)

// Demiurge (boss)
const (
	// BossRadius is the collision radius of the boss
	BossRadius = 50.0

	// BossHealth is the starting health of the boss
	BossHealth = 2000

	// BossSpeed is the approach speed per tick
	BossSpeed = 1.0

	// BossSpawnY is the vertical spawn position; horizontally the boss is centered
	BossSpawnY = 100.0

	// BossKeepDistance is the distance inside which the boss stops closing in
	BossKeepDistance = 200.0

	// BossAttackCycleTicks is the attack timer threshold for switching patterns
	BossAttackCycleTicks = 120

	// BossAttackModes is the number of attack patterns
	BossAttackModes = 3

	// BossSpawnInvincibleTicks is the grace window after spawning
	BossSpawnInvincibleTicks = 60

	// BossDamageCooldownTicks is the minimum gap between accepted hits
	BossDamageCooldownTicks = 6
)

// Boss attack patterns
const (
	// BossSpreadHalfCount yields 2*n+1 spread bullets
	BossSpreadHalfCount = 2

	// BossSpreadStep is the angle between spread bullets (15°)
	BossSpreadStep = math.Pi / 12

	// BossSpreadSpeed is the speed of spread bullets
	BossSpreadSpeed = 8.0

	// BossBarrageCount is the number of radial barrage bullets
	BossBarrageCount = 12

	// BossBarrageStep is the angular spacing of the barrage (30°)
	BossBarrageStep = 2 * math.Pi / BossBarrageCount
	// BossBarrageSpeed is the speed of radial barrage bullets
	BossBarrageSpeed = 6.0

	// BossAimedSpeed is the speed of the aimed shot
	BossAimedSpeed = 10.0
)
