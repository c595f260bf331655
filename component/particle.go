package component

import (
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// Particle is a cosmetic fading dot
type Particle struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Radius  float64
	Opacity float64
}

// NewParticle creates a particle at origin with random size and drift
func NewParticle(origin vmath.Vec2, rng *vmath.FastRand) Particle {
	half := parameter.ParticleSpeedSpread / 2
	return Particle{
		Pos:     origin,
		Vel:     vmath.Vec2{X: rng.Range(-half, half), Y: rng.Range(-half, half)},
		Radius:  rng.Range(parameter.ParticleRadiusMin, parameter.ParticleRadiusMax),
		Opacity: 1,
	}
}

// Step moves and fades the particle, returning false once it is invisible
func (p *Particle) Step() bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Opacity -= parameter.ParticleFadeStep
	return p.Opacity > 0
}
