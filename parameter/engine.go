package parameter

import "time"

// Engine timing
const (
	// MaxFrameDelta caps the dt handed to a single tick after a host stall
	MaxFrameDelta = 100 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System priorities, lower runs first within a tick
const (
	PriorityInput    = 5
	PriorityEffect   = 10
	PriorityPlayer   = 20
	PriorityPickup   = 30
	PriorityBullet   = 40
	PriorityEnemy    = 50
	PriorityBoss     = 60
	PriorityWave     = 70
	PriorityParticle = 80
)
