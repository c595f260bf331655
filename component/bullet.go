package component

import (
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// BulletSource identifies who fired a bullet, which decides its targets and damage
type BulletSource uint8

const (
	SourcePlayer BulletSource = iota
	SourceEnemy
	SourceBoss
)

// Bullet is a linear projectile; velocity is fixed at creation
type Bullet struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	Source BulletSource
}

// NewBullet creates a bullet heading along angle at speed
func NewBullet(origin vmath.Vec2, angle, speed float64, source BulletSource) Bullet {
	radius := parameter.BulletRadius
	if source != SourcePlayer {
		radius = parameter.BulletHostileRadius
	}
	return Bullet{
		Pos:    origin,
		Vel:    vmath.Polar(angle, speed),
		Radius: radius,
		Source: source,
	}
}

// IsEnemy reports whether the bullet is hostile to the player
func (b *Bullet) IsEnemy() bool {
	return b.Source != SourcePlayer
}

// Damage returns player health lost when this bullet hits the player
func (b *Bullet) Damage() int {
	switch b.Source {
	case SourceBoss:
		return parameter.DamageBossBullet
	case SourceEnemy:
		return parameter.DamageEnemyBullet
	default:
		return 0
	}
}

// Circle returns the bullet hit circle
func (b *Bullet) Circle() vmath.Circle {
	return vmath.Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
}
