package engine

import "testing"

// TestGamePhaseString tests the String() method for GamePhase
func TestGamePhaseString(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		expected string
	}{
		{PhaseNotStarted, "NotStarted"},
		{PhasePlaying, "Playing"},
		{PhaseGameOver, "GameOver"},
		{PhaseVictory, "Victory"},
		{GamePhase(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.phase.String()
			if result != tt.expected {
				t.Errorf("GamePhase(%d).String() = %q, want %q", tt.phase, result, tt.expected)
			}
		})
	}
}

// TestCanTransition verifies the lifecycle edges
func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to GamePhase
		valid    bool
	}{
		{PhaseNotStarted, PhasePlaying, true},
		{PhasePlaying, PhaseGameOver, true},
		{PhasePlaying, PhaseVictory, true},
		{PhaseNotStarted, PhaseGameOver, false},
		{PhaseGameOver, PhaseVictory, false},
		{PhaseVictory, PhaseGameOver, false},
		{PhaseGameOver, PhasePlaying, false},
		{PhasePlaying, PhasePlaying, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestTerminal(t *testing.T) {
	if PhaseNotStarted.Terminal() || PhasePlaying.Terminal() {
		t.Error("active phases reported terminal")
	}
	if !PhaseGameOver.Terminal() || !PhaseVictory.Terminal() {
		t.Error("end phases not reported terminal")
	}
}
