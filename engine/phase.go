package engine

// GamePhase is the session lifecycle state
type GamePhase int

const (
	PhaseNotStarted GamePhase = iota
	PhasePlaying
	PhaseGameOver
	PhaseVictory
)

func (p GamePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase only leaves through Reset
func (p GamePhase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// validTransitions lists forward edges; Reset to NotStarted bypasses this table
var validTransitions = map[GamePhase][]GamePhase{
	PhaseNotStarted: {PhasePlaying},
	PhasePlaying:    {PhaseGameOver, PhaseVictory},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, valid := range validTransitions[from] {
		if valid == to {
			return true
		}
	}
	return false
}
