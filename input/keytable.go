package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyUp:     IntentMoveUp,
			tcell.KeyDown:   IntentMoveDown,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
		},
		Runes: map[rune]IntentType{
			'w': IntentMoveUp,
			's': IntentMoveDown,
			'a': IntentMoveLeft,
			'd': IntentMoveRight,
			' ': IntentFire,
			'e': IntentCycleNext,
			'q': IntentCyclePrev,
			'r': IntentReset,
			'i': IntentAimUp,
			'k': IntentAimDown,
			'j': IntentAimLeft,
			'l': IntentAimRight,
		},
	}
}

// Lookup resolves a key event to an intent, IntentNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
