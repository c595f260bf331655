package component

import (
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// Star is a scrolling background star
type Star struct {
	Pos    vmath.Vec2
	Radius float64
	Speed  float64
}

// Nebula is a static translucent background blob
type Nebula struct {
	Pos     vmath.Vec2
	Radius  float64
	Opacity float64
}

// NewStarfield scatters stars and nebulae over the arena
func NewStarfield(rng *vmath.FastRand) ([]Star, []Nebula) {
	stars := make([]Star, parameter.StarCount)
	for i := range stars {
		stars[i] = Star{
			Pos:    vmath.Vec2{X: rng.Range(0, parameter.ArenaWidth), Y: rng.Range(0, parameter.ArenaHeight)},
			Radius: rng.Range(1, 3),
			Speed:  rng.Range(1, 3),
		}
	}
	nebulae := make([]Nebula, parameter.NebulaCount)
	for i := range nebulae {
		nebulae[i] = Nebula{
			Pos:     vmath.Vec2{X: rng.Range(0, parameter.ArenaWidth), Y: rng.Range(0, parameter.ArenaHeight)},
			Radius:  rng.Range(50, 100),
			Opacity: rng.Range(0.1, 0.4),
		}
	}
	return stars, nebulae
}

// Scroll moves the star down, wrapping at the bottom edge
func (s *Star) Scroll(factor float64) {
	s.Pos.Y += s.Speed * factor
	if s.Pos.Y > parameter.ArenaHeight {
		s.Pos.Y -= parameter.ArenaHeight
	}
}
