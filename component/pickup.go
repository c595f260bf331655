package component

import (
	"math"

	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// PickupKind distinguishes the two power-ups
type PickupKind uint8

const (
	PickupWings   PickupKind = iota // Sophia's Wings
	PickupPendant                   // Gnosis Pendant
)

func (k PickupKind) String() string {
	if k == PickupWings {
		return "Sophia's Wings"
	}
	return "Gnosis Pendant"
}

// Pickup is a floating power-up consumed by a player bullet
type Pickup struct {
	Kind  PickupKind
	Pos   vmath.Vec2
	Phase float64 // Bobbing animation phase
}

// NewWings places Sophia's Wings at the arena center
func NewWings() Pickup {
	return Pickup{
		Kind: PickupWings,
		Pos:  vmath.Vec2{X: parameter.ArenaWidth / 2, Y: parameter.ArenaHeight / 2},
	}
}

// NewPendant places a Gnosis Pendant at a random spot inside the edge margin
func NewPendant(rng *vmath.FastRand) Pickup {
	m := parameter.PendantEdgeMargin
	return Pickup{
		Kind: PickupPendant,
		Pos: vmath.Vec2{
			X: rng.Range(m, parameter.ArenaWidth-m),
			Y: rng.Range(m, parameter.ArenaHeight-m),
		},
	}
}

// Radius returns the collision radius of the pickup kind
func (p *Pickup) Radius() float64 {
	if p.Kind == PickupWings {
		return parameter.WingsRadius
	}
	return parameter.PendantRadius
}

// Circle returns the pickup hit circle
func (p *Pickup) Circle() vmath.Circle {
	return vmath.Circle{X: p.Pos.X, Y: p.Pos.Y, R: p.Radius()}
}

// Bob advances the floating animation by one tick
func (p *Pickup) Bob() {
	p.Phase += parameter.PickupFloatStep
	p.Pos.Y += math.Sin(p.Phase) * parameter.PickupFloatAmplitude
}
