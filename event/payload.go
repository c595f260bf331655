package event

// PhaseChangePayload carries phase names to keep event free of engine imports
type PhaseChangePayload struct {
	From string
	To   string
}

// GameOverPayload summarizes the run at the moment of death
type GameOverPayload struct {
	Score int
	Wave  int
	Level int
}

// VictoryPayload summarizes the run at the moment the boss fell
type VictoryPayload struct {
	Score int
	Level int
	X, Y  float64 // Boss position, origin of the particle burst
}

// WaveStartPayload describes a freshly spawned wave
type WaveStartPayload struct {
	Wave        int
	Tier        int
	Difficulty  string
	ArchonCount int
}

// PickupPayload identifies a power-up by kind name
type PickupPayload struct {
	Kind string
	X, Y float64
}

// EnemyKilledPayload describes a destroyed archon
type EnemyKilledPayload struct {
	EnemyID uint64
	Tier    int
	Score   int
}

// HitCause names the source of player damage
type HitCause uint8

const (
	HitEnemyBullet HitCause = iota
	HitBossBullet
	HitEnemyBody
	HitBossBody
)

func (c HitCause) String() string {
	switch c {
	case HitEnemyBullet:
		return "enemy_bullet"
	case HitBossBullet:
		return "boss_bullet"
	case HitEnemyBody:
		return "enemy_body"
	case HitBossBody:
		return "boss_body"
	default:
		return "unknown"
	}
}

// PlayerHitPayload describes damage taken
type PlayerHitPayload struct {
	Cause  HitCause
	Damage int
	Health int // Remaining, already clamped
}

// BossHitPayload describes an accepted boss hit
type BossHitPayload struct {
	Damage int
	Health int
}

// LevelUpPayload describes a level gain
type LevelUpPayload struct {
	Level int
	Score int
}

// ShootingModePayload names the new fire pattern
type ShootingModePayload struct {
	Mode string
}

// ShotFiredPayload describes one accepted trigger pull
type ShotFiredPayload struct {
	Mode    string
	Bullets int
}
