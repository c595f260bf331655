package parameter

// Pickups
const (
	// WingsRadius is the collision radius of Sophia's Wings
	WingsRadius = 20.0

	// PendantRadius is the collision radius of the Gnosis Pendant
	PendantRadius = 15.0

	// PendantSpawnChance is the per-tick chance of a pendant appearing during the boss fight
	PendantSpawnChance = 0.3

	// PendantEdgeMargin keeps pendants away from the arena edges
	PendantEdgeMargin = 20.0

	// PickupFloatStep is the per-tick phase advance of the bobbing motion
	PickupFloatStep = 0.05

	// PickupFloatAmplitude is the per-tick vertical displacement scale of the bobbing motion
	PickupFloatAmplitude = 2.0
)
