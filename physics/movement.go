package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// Seek moves pos towards target by speed along the normalized direction
// Zero distance leaves pos unchanged and reports false
func Seek(pos, target vmath.Vec2, speed float64) (vmath.Vec2, bool) {
	nx, ny, ok := vmath.Normalize(target.X-pos.X, target.Y-pos.Y)
	if !ok {
		return pos, false
	}
	return vmath.Vec2{X: pos.X + nx*speed, Y: pos.Y + ny*speed}, true
}

// Weave returns the lateral oscillation offset at session time elapsed
func Weave(elapsed time.Duration) vmath.Vec2 {
	t := float64(elapsed) / float64(parameter.EnemyWeavePeriod)
	return vmath.Vec2{
		X: math.Sin(t) * parameter.EnemyWeaveAmplitude,
		Y: math.Cos(t) * parameter.EnemyWeaveAmplitude,
	}
}

// Steer is the four-way held direction input
type Steer struct {
	Up, Down, Left, Right bool
}

// MoveClamped applies four independent axis moves
// Each axis moves only while pos is inside the margin on that side, so a step may
// overshoot the margin by less than speed, as a key held against a wall does
func MoveClamped(pos vmath.Vec2, s Steer, speed, halfW, halfH float64) vmath.Vec2 {
	if s.Up && pos.Y > halfH {
		pos.Y -= speed
	}
	if s.Down && pos.Y < parameter.ArenaHeight-halfH {
		pos.Y += speed
	}
	if s.Left && pos.X > halfW {
		pos.X -= speed
	}
	if s.Right && pos.X < parameter.ArenaWidth-halfW {
		pos.X += speed
	}
	return pos
}

// KeepDistance closes on target only while farther than minDist
func KeepDistance(pos, target vmath.Vec2, speed, minDist float64) vmath.Vec2 {
	if vmath.Distance(pos, target) <= minDist {
		return pos
	}
	next, _ := Seek(pos, target, speed)
	return next
}
