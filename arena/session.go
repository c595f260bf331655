package arena

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/input"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/status"
	"github.com/lixenwraith/archon/system"
)

// Options configures a new session
type Options struct {
	// Seed drives every random choice; equal seeds and inputs replay identically
	Seed uint64

	// Logger receives session lines; nil disables logging
	Logger *zerolog.Logger

	// SessionID tags log lines, generated when empty
	SessionID string

	// Metrics receives tick telemetry, a private registry is created when nil
	Metrics *status.Registry
}

// Session aggregates the world and its systems and advances them one tick per call
// Not safe for concurrent use; the host frame loop owns it
type Session struct {
	id     string
	world  *engine.World
	wave   *system.WaveSystem
	logger zerolog.Logger

	metrics *status.Registry
	ticks   *atomic.Int64

	// events drained by the last Advance
	events []event.GameEvent
}

// NewSession builds a NotStarted session
func NewSession(opts Options) *Session {
	id := opts.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	base := zerolog.Nop()
	if opts.Logger != nil {
		base = *opts.Logger
	}
	logger := base.With().Str("session", id).Logger()

	world := engine.NewWorld(engine.NewResources(opts.Seed, logger))
	wave := system.NewWaveSystem(world)

	world.AddSystem(system.NewInputSystem(world))
	world.AddSystem(system.NewEffectSystem(world))
	world.AddSystem(system.NewPlayerSystem(world))
	world.AddSystem(system.NewPickupSystem(world))
	world.AddSystem(system.NewBulletSystem(world))
	world.AddSystem(system.NewEnemySystem(world))
	world.AddSystem(system.NewBossSystem(world))
	world.AddSystem(wave)
	world.AddSystem(system.NewParticleSystem(world))

	metrics := opts.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	logger.Debug().Uint64("seed", opts.Seed).Msg("session created")

	return &Session{
		id:      id,
		world:   world,
		wave:    wave,
		logger:  logger,
		metrics: metrics,
		ticks:   metrics.Counter("session.ticks"),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Metrics returns the telemetry registry
func (s *Session) Metrics() *status.Registry {
	return s.metrics
}

// Phase returns the current lifecycle phase
func (s *Session) Phase() engine.GamePhase {
	return s.world.Phase
}

// World exposes the live world for hosts and tests that need direct access
func (s *Session) World() *engine.World {
	return s.world
}

// Start moves NotStarted to Playing; any other phase is left unchanged
func (s *Session) Start() bool {
	if !s.world.TransitionPhase(engine.PhasePlaying) {
		return false
	}
	s.world.PushEvent(event.EventGameStart, nil)
	s.logger.Info().Msg("session start")
	return true
}

// Reset rebuilds every collection and counter and returns to NotStarted
// The random source keeps its position so the next run differs
func (s *Session) Reset() {
	from := s.world.Phase
	s.world.Clear()

	t := s.world.Resources.Time
	t.DeltaTime = 0
	t.Elapsed = 0
	t.FrameNumber = 0

	s.world.Resources.Events.Clear()
	s.world.PushEvent(event.EventGameReset, nil)
	s.logger.Info().Str("from", from.String()).Msg("session reset")
}

// Advance runs one tick with the given input and time step and returns the resulting snapshot
// dt is clamped to [0, MaxFrameDelta]; the session clock only runs while Playing or in Victory
func (s *Session) Advance(in input.State, dt time.Duration) Snapshot {
	dt = max(0, min(dt, parameter.MaxFrameDelta))

	// Session-level actions come before the tick
	if in.Reset && s.world.Phase.Terminal() {
		s.Reset()
	}
	if in.Start && s.world.Phase == engine.PhaseNotStarted {
		s.Start()
	}

	t := s.world.Resources.Time
	t.FrameNumber++
	t.DeltaTime = dt
	if p := s.world.Phase; p == engine.PhasePlaying || p == engine.PhaseVictory {
		t.Elapsed += dt
	}

	s.world.Resources.Input = in
	s.world.Update()
	s.world.Resources.Input = input.State{}

	s.events = s.world.Resources.Events.Consume()
	s.record()
	return s.Snapshot()
}

// record updates tick telemetry
func (s *Session) record() {
	s.ticks.Add(1)
	for _, ev := range s.events {
		s.metrics.Counter("events." + ev.Type.String()).Add(1)
	}
	s.metrics.Gauge("world.bullets").Set(float64(len(s.world.Bullets)))
	s.metrics.Gauge("world.enemies").Set(float64(len(s.world.Enemies)))
	s.metrics.Gauge("world.particles").Set(float64(len(s.world.Particles)))
}

// Snapshot returns a deep copy of the renderable state
// Events are those drained by the last Advance
func (s *Session) Snapshot() Snapshot {
	return newSnapshot(s.world, s.wave.State(), s.events)
}
