package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Session Events ===

	// EventGameStart signals NotStarted -> Playing
	// Trigger: Session.Start | Payload: nil
	EventGameStart

	// EventGameReset signals a full session rebuild back to NotStarted
	// Trigger: Session.Reset | Payload: nil
	EventGameReset

	// EventPhaseChange signals any phase transition
	// Trigger: Session | Payload: *PhaseChangePayload
	EventPhaseChange

	// EventGameOver signals player health reached zero
	// Trigger: Combat resolver | Payload: *GameOverPayload
	EventGameOver

	// EventVictory signals boss health reached zero
	// Trigger: Combat resolver | Payload: *VictoryPayload
	EventVictory

	// === Wave Events ===

	// EventWaveStart signals a new wave of archons spawned
	// Trigger: WaveSystem | Payload: *WaveStartPayload
	EventWaveStart

	// EventBossSpawn signals the Demiurge entered the arena
	// Trigger: WaveSystem | Payload: nil
	EventBossSpawn

	// EventPickupSpawn signals a power-up appeared
	// Trigger: WaveSystem, BossSystem | Payload: *PickupPayload
	EventPickupSpawn

	// === Combat Events ===

	// EventEnemyKilled signals an archon destroyed by player fire
	// Trigger: Combat resolver | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerHit signals the player lost health
	// Trigger: Combat resolver | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventBossHit signals the boss accepted a hit
	// Trigger: Combat resolver | Payload: *BossHitPayload
	EventBossHit

	// EventPickupCollected signals a power-up consumed by a player bullet
	// Trigger: Combat resolver | Payload: *PickupPayload
	EventPickupCollected

	// EventInvulnerabilityFaded signals the pickup buff ran out
	// Trigger: PlayerSystem | Payload: nil
	EventInvulnerabilityFaded

	// === Player Events ===

	// EventLevelUp signals the player gained a level
	// Trigger: Combat resolver | Payload: *LevelUpPayload
	EventLevelUp

	// EventShootingModeChange signals the active fire pattern changed
	// Trigger: Session input, pickups, level cap | Payload: *ShootingModePayload
	EventShootingModeChange

	// EventShotFired signals the player fired at least one bullet
	// Trigger: Session input | Payload: *ShotFiredPayload
	EventShotFired
)

var eventNames = map[EventType]string{
	EventNone:                 "None",
	EventGameStart:            "GameStart",
	EventGameReset:            "GameReset",
	EventPhaseChange:          "PhaseChange",
	EventGameOver:             "GameOver",
	EventVictory:              "Victory",
	EventWaveStart:            "WaveStart",
	EventBossSpawn:            "BossSpawn",
	EventPickupSpawn:          "PickupSpawn",
	EventEnemyKilled:          "EnemyKilled",
	EventPlayerHit:            "PlayerHit",
	EventBossHit:              "BossHit",
	EventPickupCollected:      "PickupCollected",
	EventInvulnerabilityFaded: "InvulnerabilityFaded",
	EventLevelUp:              "LevelUp",
	EventShootingModeChange:   "ShootingModeChange",
	EventShotFired:            "ShotFired",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
