package engine

import (
	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/vmath"
)

// World owns every entity and counter of one arena session
// Single-threaded: only the session tick touches it
type World struct {
	Player component.Player

	Bullets []component.Bullet
	Enemies []component.Enemy

	Boss        *component.Boss
	BossSpawned bool // Latched for the session, the boss appears at most once

	Wings        *component.Pickup
	WingsSpawned bool
	Pendant      *component.Pickup

	Particles []component.Particle
	Stars     []component.Star
	Nebulae   []component.Nebula

	Wave        int
	ArchonCount int // Enemies spawned so far, at most TotalArchons
	Score       int

	Announcement component.Announcement
	Shake        component.ScreenShake

	Phase GamePhase

	// TranscendenceComplete is set once the victory animation has run out
	TranscendenceComplete bool

	Resources Resources

	systems     []System
	nextEnemyID uint64
}

// NewWorld creates an empty NotStarted world around the given resources
func NewWorld(res Resources) *World {
	w := &World{Resources: res}
	w.Clear()
	return w
}

// Clear rebuilds the entity state of a fresh session, keeping resources and systems
func (w *World) Clear() {
	w.Player = component.NewPlayer()
	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Boss = nil
	w.BossSpawned = false
	w.Wings = nil
	w.WingsSpawned = false
	w.Pendant = nil
	w.Particles = w.Particles[:0]
	w.Stars, w.Nebulae = component.NewStarfield(w.Resources.Rng)
	w.Wave = 0
	w.ArchonCount = 0
	w.Score = 0
	w.Announcement = component.Announcement{}
	w.Shake = component.ScreenShake{}
	w.Phase = PhaseNotStarted
	w.TranscendenceComplete = false
	w.nextEnemyID = 1

	for _, s := range w.systems {
		s.Init()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	system.Init()
	w.systems = append(w.systems, system)

	// Insertion step, small N
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// Rng returns the session random source
func (w *World) Rng() *vmath.FastRand {
	return w.Resources.Rng
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	if w.Resources.Time == nil {
		return 0
	}
	return w.Resources.Time.FrameNumber
}

// NextEnemyID returns a fresh enemy identifier
func (w *World) NextEnemyID() uint64 {
	id := w.nextEnemyID
	w.nextEnemyID++
	return id
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resources.Events == nil {
		return
	}
	w.Resources.Events.Emit(eventType, payload, w.FrameNumber())
}

// Announce replaces the current banner
func (w *World) Announce(text string) {
	w.Announcement = component.NewAnnouncement(text)
}

// TransitionPhase moves to a new phase if the edge is valid, emitting EventPhaseChange
func (w *World) TransitionPhase(to GamePhase) bool {
	if !CanTransition(w.Phase, to) {
		return false
	}
	from := w.Phase
	w.Phase = to
	w.PushEvent(event.EventPhaseChange, &event.PhaseChangePayload{From: from.String(), To: to.String()})
	w.Resources.Logger.Debug().Str("from", from.String()).Str("to", to.String()).Msg("phase change")
	return true
}
