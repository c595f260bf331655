package event

import (
	"testing"

	"github.com/lixenwraith/archon/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventWaveStart, &WaveStartPayload{Wave: 1}, 1)
	q.Emit(EventBossSpawn, nil, 2)

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Consume returned %d events, want 2", len(got))
	}
	if got[0].Type != EventWaveStart || got[1].Type != EventBossSpawn {
		t.Errorf("unexpected order: %v, %v", got[0].Type, got[1].Type)
	}
	if got[1].Frame != 2 {
		t.Errorf("frame = %d, want 2", got[1].Frame)
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue should be empty after Consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Emit(EventShotFired, nil, int64(i))
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Consume returned %d events, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Frame != 10 {
		t.Errorf("oldest surviving frame = %d, want 10", got[0].Frame)
	}
	if got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("newest frame = %d, want %d", got[len(got)-1].Frame, total-1)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventLevelUp, &LevelUpPayload{Level: 2}, 0)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", q.Len())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventVictory.String() != "Victory" {
		t.Errorf("got %q", EventVictory.String())
	}
	if EventType(9999).String() != "Unknown" {
		t.Errorf("unknown type should stringify as Unknown")
	}
}
