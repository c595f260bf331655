package arena

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/input"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/status"
	"github.com/lixenwraith/archon/system"
	"github.com/lixenwraith/archon/vmath"
)

const tick = 16 * time.Millisecond

func newTestSession(seed uint64) *Session {
	return NewSession(Options{Seed: seed, SessionID: "test"})
}

func hasEvent(snap Snapshot, t event.EventType) bool {
	for _, ev := range snap.Events {
		if ev.Type == t {
			return true
		}
	}
	return false
}

func TestSessionNotStartedIsIdle(t *testing.T) {
	s := newTestSession(1)

	var snap Snapshot
	for range 500 {
		snap = s.Advance(input.State{Fire: true, Up: true}, tick)
	}

	assert.Equal(t, engine.PhaseNotStarted, snap.Phase)
	assert.Equal(t, int64(500), snap.Frame)
	assert.Zero(t, snap.Elapsed, "session clock only runs once started")
	assert.Zero(t, snap.Wave)
	assert.Empty(t, snap.Bullets)
	assert.Equal(t, vmath.Vec2{X: 400, Y: 300}, snap.Player.Pos)
	assert.Equal(t, system.WaveIdle, snap.WaveState)
}

func TestSessionStartViaInput(t *testing.T) {
	s := newTestSession(1)

	snap := s.Advance(input.State{Start: true}, tick)
	assert.Equal(t, engine.PhasePlaying, snap.Phase)
	assert.True(t, hasEvent(snap, event.EventGameStart))
	assert.True(t, hasEvent(snap, event.EventPhaseChange))
	assert.Equal(t, tick, snap.Elapsed)

	assert.False(t, s.Start(), "already playing")
}

func TestSessionFireAndMove(t *testing.T) {
	s := newTestSession(1)
	s.Start()

	snap := s.Advance(input.State{Right: true, Angle: 0, HasAngle: true, Fire: true}, tick)

	assert.Equal(t, 405.0, snap.Player.Pos.X)
	require.Len(t, snap.Bullets, 1)
	// Bullet created by the input step then moved once by the bullet system
	assert.InDelta(t, 410, snap.Bullets[0].Pos.X, 1e-9)
	assert.True(t, hasEvent(snap, event.EventShotFired))
}

func TestSessionWavesArrive(t *testing.T) {
	s := newTestSession(3)
	s.Start()

	var snap Snapshot
	for range 2000 {
		snap = s.Advance(input.State{}, tick)
		if snap.Wave > 0 {
			break
		}
	}
	require.Equal(t, 1, snap.Wave)
	assert.Equal(t, parameter.ArchonsPerWave, snap.ArchonCount)
	assert.Len(t, snap.Enemies, parameter.ArchonsPerWave)
	assert.Equal(t, "Wave 1 - Easy", snap.Announcement.Text)
	assert.True(t, hasEvent(snap, event.EventWaveStart))
	assert.Equal(t, ThemeEarly, snap.Theme)
}

func TestSessionGameOverThenReset(t *testing.T) {
	s := newTestSession(5)
	s.Start()

	// Stand still and let the archons come
	var snap Snapshot
	gameOvers := 0
	for range 20000 {
		snap = s.Advance(input.State{}, tick)
		if hasEvent(snap, event.EventGameOver) {
			gameOvers++
		}
		if snap.Phase != engine.PhasePlaying {
			break
		}
	}
	require.Equal(t, engine.PhaseGameOver, snap.Phase)
	assert.Equal(t, 1, gameOvers)
	assert.Zero(t, snap.Player.Health)

	// Terminal phases ignore everything but reset
	frozen := s.Advance(input.State{Fire: true, Start: true, Up: true}, tick)
	assert.Equal(t, engine.PhaseGameOver, frozen.Phase)
	assert.Equal(t, snap.Player.Pos, frozen.Player.Pos)
	assert.Equal(t, len(snap.Enemies), len(frozen.Enemies))

	snap = s.Advance(input.State{Reset: true}, tick)
	assert.Equal(t, engine.PhaseNotStarted, snap.Phase)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Wave)
	assert.Zero(t, snap.ArchonCount)
	assert.Equal(t, parameter.PlayerMaxHealth, snap.Player.Health)
	assert.Equal(t, 1, snap.Player.Level)
	assert.Empty(t, snap.Enemies)
	assert.Empty(t, snap.Bullets)
	assert.Nil(t, snap.Boss)
	assert.True(t, hasEvent(snap, event.EventGameReset))
}

func TestResetIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(5)
	s.Start()
	s.World().Score = 50

	snap := s.Advance(input.State{Reset: true}, tick)
	assert.Equal(t, engine.PhasePlaying, snap.Phase)
	assert.Equal(t, 50, snap.Score)
}

func TestVictoryFlow(t *testing.T) {
	s := newTestSession(9)
	s.Start()
	w := s.World()

	// Skip the waves
	w.ArchonCount = parameter.TotalArchons
	w.Wave = 10
	w.Player.GrantInvincibility(1 << 30)

	snap := s.Advance(input.State{}, tick)
	require.NotNil(t, snap.Boss)
	assert.Equal(t, system.WaveBoss, snap.WaveState)
	assert.True(t, snap.HUD.HasBoss)
	assert.Equal(t, parameter.BossHealth, snap.HUD.BossHealth)

	w.Boss.InvincibleTimer = 0
	w.Boss.Health = parameter.DamagePlayerBulletBoss
	w.Bullets = append(w.Bullets, component.Bullet{Pos: w.Boss.Pos, Radius: 5, Source: component.SourcePlayer})

	snap = s.Advance(input.State{}, tick)
	require.Equal(t, engine.PhaseVictory, snap.Phase)
	assert.Nil(t, snap.Boss)
	assert.Len(t, snap.Particles, parameter.VictoryParticleCount)
	assert.True(t, hasEvent(snap, event.EventVictory))
	assert.True(t, snap.Player.Transcendence.Active)

	// Draw-only loop until the animation completes
	for range parameter.TranscendenceTicks + 1 {
		snap = s.Advance(input.State{}, tick)
	}
	assert.True(t, snap.TranscendenceComplete)
	assert.Equal(t, engine.PhaseVictory, snap.Phase)
	assert.Empty(t, snap.Particles)
	assert.Zero(t, snap.Shake.Timer)

	snap = s.Advance(input.State{Reset: true}, tick)
	assert.Equal(t, engine.PhaseNotStarted, snap.Phase)
	assert.False(t, snap.TranscendenceComplete)
	assert.False(t, snap.Player.Transcendence.Active)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	s.Advance(input.State{Fire: true, HasAngle: true}, tick)
	w := s.World()
	boss := component.NewBoss()
	w.Boss = &boss

	snap := s.Snapshot()
	require.Len(t, snap.Bullets, 1)
	snap.Bullets[0].Pos.X = -1
	snap.Boss.Health = 1
	snap.Stars[0].Pos.X = -1

	assert.NotEqual(t, -1.0, w.Bullets[0].Pos.X)
	assert.Equal(t, parameter.BossHealth, w.Boss.Health)
	assert.NotEqual(t, -1.0, w.Stars[0].Pos.X)
}

func TestDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(1234)
		s.Start()
		var snap Snapshot
		for i := range 3000 {
			in := input.State{
				Left:     i%200 < 100,
				Right:    i%200 >= 100,
				Angle:    float64(i%360) * vmath.Degree,
				HasAngle: true,
				Fire:     i%5 == 0,
			}
			snap = s.Advance(in, tick)
		}
		snap.Events = nil
		return snap
	}

	a, b := run(), run()
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Wave, b.Wave)
	assert.Equal(t, a.Player, b.Player)
	assert.Equal(t, a.Enemies, b.Enemies)
	assert.Equal(t, a.Bullets, b.Bullets)
}

func TestDtClamped(t *testing.T) {
	s := newTestSession(1)
	s.Start()

	snap := s.Advance(input.State{}, time.Hour)
	assert.Equal(t, parameter.MaxFrameDelta, snap.Elapsed)

	snap = s.Advance(input.State{}, -time.Second)
	assert.Equal(t, parameter.MaxFrameDelta, snap.Elapsed)
}

func TestThemeForWave(t *testing.T) {
	assert.Equal(t, ThemeEarly, ThemeForWave(0))
	assert.Equal(t, ThemeEarly, ThemeForWave(3))
	assert.Equal(t, ThemeMid, ThemeForWave(4))
	assert.Equal(t, ThemeMid, ThemeForWave(7))
	assert.Equal(t, ThemeLate, ThemeForWave(8))
}

func TestHUD(t *testing.T) {
	s := newTestSession(1)
	s.Start()
	w := s.World()
	w.Score = 230
	w.Wave = 4
	w.Player.GrantInvincibility(10)

	hud := s.Snapshot().HUD
	assert.Equal(t, 23, hud.ArchonsDefeated)
	assert.Equal(t, parameter.TotalArchons, hud.TotalArchons)
	assert.Equal(t, 4, hud.Wave)
	assert.Equal(t, "Single", hud.Mode)
	assert.True(t, hud.Invulnerable)
	assert.False(t, hud.HasBoss)
}

func TestSessionMetrics(t *testing.T) {
	reg := status.NewRegistry()
	s := NewSession(Options{Seed: 1, SessionID: "test", Metrics: reg})
	require.Same(t, reg, s.Metrics())

	s.Advance(input.State{Start: true}, tick)
	s.Advance(input.State{HasAngle: true, Fire: true}, tick)

	values := reg.Values()
	assert.EqualValues(t, 2, values["session.ticks"])
	assert.EqualValues(t, 1, values["events.GameStart"])
	assert.EqualValues(t, 1, values["events.ShotFired"])
	assert.EqualValues(t, 1, values["world.bullets"])
}
