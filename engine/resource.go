package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/input"
	"github.com/lixenwraith/archon/vmath"
)

// TimeResource wraps time data for systems
// Updated by the session at the start of each tick
type TimeResource struct {
	// DeltaTime is the duration passed to the current Advance
	DeltaTime time.Duration

	// Elapsed is the session clock, the running sum of DeltaTime since Start
	Elapsed time.Duration

	// FrameNumber counts ticks since the session was built
	FrameNumber int64
}

// Resources are the shared per-session services systems read from the world
type Resources struct {
	Time   *TimeResource
	Rng    *vmath.FastRand
	Events *event.EventQueue
	Logger zerolog.Logger

	// Input is the state handed to the current tick
	Input input.State
}

// NewResources creates resources with a seeded generator
// Pass zerolog.Nop() for a silent session
func NewResources(seed uint64, logger zerolog.Logger) Resources {
	return Resources{
		Time:   &TimeResource{},
		Rng:    vmath.NewFastRand(seed),
		Events: event.NewEventQueue(),
		Logger: logger,
	}
}
