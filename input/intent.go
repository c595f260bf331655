package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the host
	IntentQuit   // Esc, Ctrl+C, Ctrl+Q
	IntentResize // Terminal resize event

	// Session intents
	IntentStart // Enter
	IntentReset // r, only honored in terminal phases

	// Held movement, one per axis direction
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight

	// Discrete combat intents
	IntentFire      // Space, left click
	IntentCycleNext // e, wheel down
	IntentCyclePrev // q, wheel up

	// Keyboard aim, explicit angle
	IntentAimUp
	IntentAimDown
	IntentAimLeft
	IntentAimRight
)

// Direction indexes held movement flags
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)
