package input

import (
	"math"

	"github.com/lixenwraith/archon/vmath"
)

// State is the per-frame input handed to the simulation
// Held flags describe the frame; discrete fields are edges collected since the last frame
type State struct {
	Up, Down, Left, Right bool

	// Pointer is the aim target in arena units, used when HasPointer
	Pointer    vmath.Vec2
	HasPointer bool

	// Angle is an explicit facing in radians, used when HasAngle and no pointer
	Angle    float64
	HasAngle bool

	Fire  bool
	Cycle int // Net wheel steps, positive = next mode
	Start bool
	Reset bool

	// Quit is consumed by the host and never reaches the simulation
	Quit bool
}

// AimAngle resolves the facing requested for a player at pos
// ok is false when the frame carries no aim, or the pointer sits on the player
func (s State) AimAngle(pos vmath.Vec2) (angle float64, ok bool) {
	if s.HasPointer {
		if s.Pointer == pos {
			return 0, false
		}
		return vmath.AngleTo(pos, s.Pointer), true
	}
	if s.HasAngle {
		return s.Angle, true
	}
	return 0, false
}

// intentAngle maps keyboard aim intents to screen angles (y grows downward)
var intentAngle = map[IntentType]float64{
	IntentAimRight: 0,
	IntentAimDown:  math.Pi / 2,
	IntentAimLeft:  math.Pi,
	IntentAimUp:    -math.Pi / 2,
}
