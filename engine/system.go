package engine

// System is one per-tick behavior over the world
// Systems run in ascending Priority order and skip work in phases they do not apply to
type System interface {
	Name() string
	Priority() int // Lower values run first

	// Init clears per-session state, called on registration and every Clear
	Init()

	Update()
}
