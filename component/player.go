package component

import (
	"time"

	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// ShootingMode selects the player's fire pattern
type ShootingMode int

const (
	ModeSingle ShootingMode = iota
	ModeTriple
	ModeRapid
	ModeRadial
	modeCount
)

var shootingModeNames = [...]string{"Single", "Triple", "Rapid", "Radial"}

func (m ShootingMode) String() string {
	if m < 0 || m >= modeCount {
		return "Unknown"
	}
	return shootingModeNames[m]
}

// Cycle steps through the four modes with wraparound, then caps the result at max
func (m ShootingMode) Cycle(dir int, max ShootingMode) ShootingMode {
	next := ShootingMode((int(m) + dir%int(modeCount) + int(modeCount)) % int(modeCount))
	return min(next, max)
}

// MaxUnlockedMode is the highest mode the player may select
// The wings buff unlocks Radial outright; otherwise level gates Triple and Rapid
func MaxUnlockedMode(level int, hasRadial bool) ShootingMode {
	switch {
	case hasRadial:
		return ModeRadial
	case level >= parameter.LevelUnlockRapid:
		return ModeRapid
	case level >= parameter.LevelUnlockTriple:
		return ModeTriple
	default:
		return ModeSingle
	}
}

// LevelCapMode is the cap applied when a level-up happens
// Radial survives only with the buff and level >= 6; below level 5 nothing is capped
func LevelCapMode(level int, hasRadial bool) ShootingMode {
	switch {
	case hasRadial && level >= parameter.LevelUnlockRadial:
		return ModeRadial
	case level >= parameter.LevelUnlockRapid:
		return ModeRapid
	case level >= parameter.LevelUnlockTriple:
		return ModeTriple
	default:
		return ModeRadial
	}
}

// Transcendence is the victory animation state
type Transcendence struct {
	Active  bool
	Scale   float64
	Opacity float64
	Timer   int
}

// Player is the single player-controlled entity
type Player struct {
	Pos          vmath.Vec2
	Angle        float64 // Facing, radians
	Health       int
	Level        int
	ShootingMode ShootingMode
	DamageFlash  int // Ticks remaining

	Invincible      bool
	InvincibleTimer int // Ticks remaining

	Transcendence Transcendence
	HasRadialMode bool

	// LastShot is the session clock reading of the last accepted shot
	LastShot time.Duration
	hasShot  bool
}

// NewPlayer creates a level 1 player centered in the arena
func NewPlayer() Player {
	return Player{
		Pos:    vmath.Vec2{X: parameter.ArenaWidth / 2, Y: parameter.ArenaHeight / 2},
		Health: parameter.PlayerMaxHealth,
		Level:  1,
		Transcendence: Transcendence{
			Scale:   1,
			Opacity: 1,
		},
	}
}

// Circle returns the player hit circle
func (p *Player) Circle() vmath.Circle {
	return vmath.Circle{X: p.Pos.X, Y: p.Pos.Y, R: parameter.PlayerRadius}
}

// Speed returns movement per tick for the current level
func (p *Player) Speed() float64 {
	return parameter.PlayerBaseSpeed + float64(p.Level-1)*parameter.PlayerSpeedPerLevel
}

// ShotReady reports whether the mode cooldown has elapsed at session time now
func (p *Player) ShotReady(now time.Duration) bool {
	if !p.hasShot {
		return true
	}
	var cooldown time.Duration
	switch p.ShootingMode {
	case ModeRapid:
		cooldown = parameter.ShotRapidCooldown
	case ModeRadial:
		cooldown = parameter.ShotRadialCooldown
	}
	return now-p.LastShot >= cooldown
}

// MarkShot records an accepted shot at session time now
func (p *Player) MarkShot(now time.Duration) {
	p.LastShot = now
	p.hasShot = true
}

// TakeDamage subtracts amount, clamping at zero, and starts the hit flash
// Returns true if this hit brought health to zero
func (p *Player) TakeDamage(amount int) bool {
	if p.Health <= 0 {
		return false
	}
	p.Health = max(0, p.Health-amount)
	p.DamageFlash = parameter.DamageFlashTicks
	return p.Health == 0
}

// GrantInvincibility starts or refreshes the invulnerability window
func (p *Player) GrantInvincibility(ticks int) {
	p.Invincible = true
	p.InvincibleTimer = ticks
}
