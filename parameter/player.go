package parameter

import (
	"math"
	"time"
)

// Player body
const (
	// PlayerSize is the sprite width and height; the hit circle radius is half of it
	PlayerSize = 40.0

	// PlayerRadius is the collision radius of the player
	PlayerRadius = PlayerSize / 2

	// PlayerBaseSpeed is the movement per tick at level 1
	PlayerBaseSpeed = 5.0

	// PlayerSpeedPerLevel is the movement bonus per level above 1
	PlayerSpeedPerLevel = 0.5

	// PlayerMaxHealth is the starting and maximum health
	PlayerMaxHealth = 100
)

// Level unlocks
const (
	// LevelKillsPerLevel scales the level-up threshold: score/10 >= level*LevelKillsPerLevel
	LevelKillsPerLevel = 10

	// LevelUnlockTriple is the level at which Triple mode unlocks
	LevelUnlockTriple = 5

	// LevelUnlockRadial is the minimum level for Radial to survive a level-up cap
	LevelUnlockRadial = 6

	// LevelUnlockRapid is the level at which Rapid mode unlocks
	LevelUnlockRapid = 10
)

// Shooting
const (
	// ShotRapidCooldown is the minimum interval between Rapid shots
	ShotRapidCooldown = 100 * time.Millisecond

	// ShotRadialCooldown is the minimum interval between Radial volleys
	ShotRadialCooldown = 200 * time.Millisecond

	// ShotTripleSpread is the angle offset of the outer Triple bullets (15°)
	ShotTripleSpread = math.Pi / 12

	// ShotRadialCount is the number of bullets per Radial volley
	ShotRadialCount = 12

	// ShotRadialStep is the angular spacing of a Radial volley (30°)
	ShotRadialStep = 2 * math.Pi / ShotRadialCount
)

// Transcendence (victory animation)
const (
	// TranscendenceScaleStep is the per-tick scale growth
	TranscendenceScaleStep = 0.01

	// TranscendenceFadeStep is the per-tick opacity loss
	TranscendenceFadeStep = 0.005

	// TranscendenceTicks is the tick count after which the animation is complete
	TranscendenceTicks = 300
)
