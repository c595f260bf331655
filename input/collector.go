package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/archon/vmath"
)

// PointerMapper converts a terminal cell to arena coordinates
// ok is false for cells outside the arena viewport
type PointerMapper func(x, y int) (pos vmath.Vec2, ok bool)

// Collector folds terminal events into one State per frame
// Terminals report key presses only, never releases, so a direction counts as held
// for the hold window after its last press or auto-repeat
//
// Not safe for concurrent use; the frame loop owns it
type Collector struct {
	keyTable *KeyTable
	hold     time.Duration
	mapper   PointerMapper

	lastPress [dirCount]time.Time

	// Sticky across frames
	pointer    vmath.Vec2
	hasPointer bool
	angle      float64
	hasAngle   bool
	buttons    tcell.ButtonMask

	// Edges since the last Snapshot
	pending State
}

// NewCollector creates a collector with the default key table
func NewCollector(hold time.Duration, mapper PointerMapper) *Collector {
	return &Collector{
		keyTable: DefaultKeyTable(),
		hold:     hold,
		mapper:   mapper,
	}
}

// SetMapper replaces the pointer mapping, used after a terminal resize
func (c *Collector) SetMapper(mapper PointerMapper) {
	c.mapper = mapper
}

// Handle records one terminal event observed at now
// Returns the intent it resolved to, so the host can react to quit and resize
func (c *Collector) Handle(ev tcell.Event, now time.Time) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := c.keyTable.Lookup(ev)
		c.apply(intent, now)
		return intent

	case *tcell.EventMouse:
		return c.handleMouse(ev)

	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

func (c *Collector) apply(intent IntentType, now time.Time) {
	switch intent {
	case IntentMoveUp:
		c.lastPress[DirUp] = now
	case IntentMoveDown:
		c.lastPress[DirDown] = now
	case IntentMoveLeft:
		c.lastPress[DirLeft] = now
	case IntentMoveRight:
		c.lastPress[DirRight] = now
	case IntentFire:
		c.pending.Fire = true
	case IntentCycleNext:
		c.pending.Cycle++
	case IntentCyclePrev:
		c.pending.Cycle--
	case IntentStart:
		c.pending.Start = true
	case IntentReset:
		c.pending.Reset = true
	case IntentQuit:
		c.pending.Quit = true
	case IntentAimUp, IntentAimDown, IntentAimLeft, IntentAimRight:
		// Keyboard aim overrides the mouse until the mouse moves again
		c.angle = intentAngle[intent]
		c.hasAngle = true
		c.hasPointer = false
	}
}

func (c *Collector) handleMouse(ev *tcell.EventMouse) IntentType {
	intent := IntentNone

	if c.mapper != nil {
		x, y := ev.Position()
		if pos, ok := c.mapper(x, y); ok {
			c.pointer = pos
			c.hasPointer = true
		}
	}

	buttons := ev.Buttons()
	// Fire on the press edge only; tcell repeats the mask on drag
	if buttons&tcell.Button1 != 0 && c.buttons&tcell.Button1 == 0 {
		c.pending.Fire = true
		intent = IntentFire
	}
	if buttons&tcell.WheelDown != 0 {
		c.pending.Cycle++
		intent = IntentCycleNext
	}
	if buttons&tcell.WheelUp != 0 {
		c.pending.Cycle--
		intent = IntentCyclePrev
	}
	c.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown)
	return intent
}

// Snapshot returns the State for the frame at now and clears collected edges
func (c *Collector) Snapshot(now time.Time) State {
	s := c.pending
	c.pending = State{}

	s.Up = c.held(DirUp, now)
	s.Down = c.held(DirDown, now)
	s.Left = c.held(DirLeft, now)
	s.Right = c.held(DirRight, now)

	s.Pointer, s.HasPointer = c.pointer, c.hasPointer
	s.Angle, s.HasAngle = c.angle, c.hasAngle
	return s
}

func (c *Collector) held(d Direction, now time.Time) bool {
	last := c.lastPress[d]
	return !last.IsZero() && now.Sub(last) <= c.hold
}
