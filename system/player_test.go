package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/input"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

func TestShootPatterns(t *testing.T) {
	tests := []struct {
		name  string
		mode  component.ShootingMode
		count int
		speed float64
	}{
		{"single", component.ModeSingle, 1, parameter.BulletSpeed},
		{"triple", component.ModeTriple, 3, parameter.BulletSpeed},
		{"rapid", component.ModeRapid, 1, parameter.BulletRapidSpeed},
		{"radial", component.ModeRadial, 12, parameter.BulletRadialSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := component.NewPlayer()
			p.ShootingMode = tt.mode
			bullets := Shoot(&p, 0)
			require.Len(t, bullets, tt.count)
			for _, b := range bullets {
				assert.InDelta(t, tt.speed, b.Vel.Len(), 1e-9)
				assert.Equal(t, component.SourcePlayer, b.Source)
				assert.Equal(t, parameter.BulletRadius, b.Radius)
				assert.Equal(t, p.Pos, b.Pos)
			}
		})
	}
}

func TestShootTripleSpread(t *testing.T) {
	p := component.NewPlayer()
	p.ShootingMode = component.ModeTriple
	p.Angle = 0.5

	bullets := Shoot(&p, 0)
	require.Len(t, bullets, 3)
	want := []float64{0.5 - math.Pi/12, 0.5, 0.5 + math.Pi/12}
	for i, b := range bullets {
		assert.InDelta(t, want[i], math.Atan2(b.Vel.Y, b.Vel.X), 1e-9)
	}
}

func TestShootRadialCoversCircle(t *testing.T) {
	p := component.NewPlayer()
	p.ShootingMode = component.ModeRadial
	p.Angle = 1.234 // ignored

	bullets := Shoot(&p, 0)
	require.Len(t, bullets, 12)
	for i, b := range bullets {
		want := vmath.Polar(float64(i)*math.Pi/6, parameter.BulletRadialSpeed)
		assert.InDelta(t, want.X, b.Vel.X, 1e-9)
		assert.InDelta(t, want.Y, b.Vel.Y, 1e-9)
	}
}

func TestShootCooldown(t *testing.T) {
	p := component.NewPlayer()
	p.ShootingMode = component.ModeRapid

	require.Len(t, Shoot(&p, time.Second), 1)
	assert.Nil(t, Shoot(&p, time.Second+50*time.Millisecond), "rapid within 100ms")
	assert.Len(t, Shoot(&p, time.Second+100*time.Millisecond), 1)

	p.ShootingMode = component.ModeRadial
	assert.Nil(t, Shoot(&p, time.Second+250*time.Millisecond), "radial within 200ms")
	assert.Len(t, Shoot(&p, time.Second+300*time.Millisecond), 12)

	// Single has no cooldown
	p.ShootingMode = component.ModeSingle
	assert.Len(t, Shoot(&p, time.Second+300*time.Millisecond), 1)
}

func TestCycleModeRespectsUnlocks(t *testing.T) {
	w := newPlayingWorld()

	CycleMode(w, 1)
	assert.Equal(t, component.ModeSingle, w.Player.ShootingMode, "level 1 has only Single")

	w.Player.Level = parameter.LevelUnlockTriple
	CycleMode(w, 1)
	assert.Equal(t, component.ModeTriple, w.Player.ShootingMode)
	CycleMode(w, 1)
	assert.Equal(t, component.ModeTriple, w.Player.ShootingMode, "Rapid still locked")

	w.Player.Level = parameter.LevelUnlockRapid
	CycleMode(w, 1)
	assert.Equal(t, component.ModeRapid, w.Player.ShootingMode)

	w.Player.HasRadialMode = true
	w.Player.ShootingMode = component.ModeSingle
	CycleMode(w, -1)
	assert.Equal(t, component.ModeRadial, w.Player.ShootingMode, "wraps backwards to Radial")

	events := w.Resources.Events.Consume()
	assert.Equal(t, 3, countEvents(events, event.EventShootingModeChange))
}

func TestInputSystemAimAndFire(t *testing.T) {
	w := newPlayingWorld()
	s := NewInputSystem(w)

	w.Resources.Input = input.State{
		Pointer:    vmath.Vec2{X: w.Player.Pos.X, Y: w.Player.Pos.Y - 100},
		HasPointer: true,
		Fire:       true,
	}
	s.Update()

	assert.InDelta(t, -math.Pi/2, w.Player.Angle, 1e-9)
	require.Len(t, w.Bullets, 1)
	assert.InDelta(t, -parameter.BulletSpeed, w.Bullets[0].Vel.Y, 1e-9)
	assert.Equal(t, 1, countEvents(w.Resources.Events.Consume(), event.EventShotFired))
}

func TestInputSystemIgnoredOutsidePlaying(t *testing.T) {
	w := newPlayingWorld()
	w.TransitionPhase(engine.PhaseGameOver)
	s := NewInputSystem(w)

	w.Resources.Input = input.State{Angle: 1, HasAngle: true, Fire: true, Cycle: 1}
	s.Update()

	assert.Zero(t, w.Player.Angle)
	assert.Empty(t, w.Bullets)
}

func TestPlayerMovementClampsToMargin(t *testing.T) {
	w := newPlayingWorld()
	s := NewPlayerSystem(w)

	w.Player.Pos = vmath.Vec2{X: 400, Y: 300}
	w.Resources.Input = input.State{Up: true, Left: true}
	s.Update()
	assert.Equal(t, vmath.Vec2{X: 395, Y: 295}, w.Player.Pos)

	// At the margin the axis stops
	w.Player.Pos = vmath.Vec2{X: 20, Y: 20}
	s.Update()
	assert.Equal(t, vmath.Vec2{X: 20, Y: 20}, w.Player.Pos)

	// Speed grows with level
	w.Player.Level = 3
	w.Player.Pos = vmath.Vec2{X: 400, Y: 300}
	w.Resources.Input = input.State{Right: true}
	s.Update()
	assert.Equal(t, 406.0, w.Player.Pos.X)
}

func TestInvulnerabilityFades(t *testing.T) {
	w := newPlayingWorld()
	s := NewPlayerSystem(w)

	w.Player.GrantInvincibility(2)
	s.Update()
	assert.True(t, w.Player.Invincible)
	s.Update()
	assert.False(t, w.Player.Invincible)
	assert.Equal(t, parameter.AnnounceInvulnerabilityFades, w.Announcement.Text)
	assert.Equal(t, 1, countEvents(w.Resources.Events.Consume(), event.EventInvulnerabilityFaded))
}

func TestTranscendenceCompletes(t *testing.T) {
	w := newPlayingWorld()
	w.TransitionPhase(engine.PhaseVictory)
	w.Player.Transcendence.Active = true
	s := NewPlayerSystem(w)

	for range parameter.TranscendenceTicks {
		s.Update()
	}
	assert.False(t, w.TranscendenceComplete)
	s.Update()
	assert.True(t, w.TranscendenceComplete)
	assert.Zero(t, w.Player.Transcendence.Opacity)
	assert.InDelta(t, 1+0.01*301, w.Player.Transcendence.Scale, 1e-9)
}
