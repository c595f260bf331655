package parameter

// Bullets
const (
	// BulletSpeed is the default bullet speed per tick
	BulletSpeed = 10.0

	// BulletRapidSpeed is the speed of Rapid mode bullets
	BulletRapidSpeed = 15.0

	// BulletRadialSpeed is the speed of Radial mode bullets
	BulletRadialSpeed = 8.0

	// BulletRadius is the radius of player bullets
	BulletRadius = 5.0

	// BulletHostileRadius is the radius of enemy and boss bullets
	BulletHostileRadius = 7.0
)

// Damage dealt to enemies
const (
	// DamagePlayerBulletEnemy is enemy health lost per player bullet
	DamagePlayerBulletEnemy = 25

	// DamagePlayerBulletBoss is boss health lost per accepted player bullet
	DamagePlayerBulletBoss = 5
)

// Damage dealt to the player
const (
	// DamageEnemyBullet is player health lost per enemy bullet
	DamageEnemyBullet = 5

	// DamageBossBullet is player health lost per boss bullet
	DamageBossBullet = 10

	// DamageEnemyBody is player health lost on enemy contact; the enemy is consumed
	DamageEnemyBody = 10

	// DamageBossBody is player health lost per tick of boss contact
	DamageBossBody = 20
)

// Timers, in ticks
const (
	// DamageFlashTicks is the hit flash duration for every entity
	DamageFlashTicks = 10

	// InvincibilityTicks is the invulnerability granted by either pickup
	InvincibilityTicks = 600
)

// Scoring
const (
	// ScorePerKill is awarded per destroyed enemy
	ScorePerKill = 10
)
