package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

func TestParticlesFadeOut(t *testing.T) {
	w := newPlayingWorld()
	s := NewParticleSystem(w)
	w.Particles = append(w.Particles, component.NewParticle(vmath.Vec2{X: 100, Y: 100}, w.Rng()))

	// Opacity reaches zero after about 1/0.02 steps
	steps := 0
	for len(w.Particles) > 0 && steps < 100 {
		s.Update()
		steps++
	}
	assert.Empty(t, w.Particles)
	assert.InDelta(t, 50, steps, 1)
}

func TestStarsScrollEveryPhase(t *testing.T) {
	w := engine.NewWorld(engine.NewResources(7, zeroLogger()))
	s := NewParticleSystem(w)
	star := &w.Stars[0]
	star.Pos.Y = 10
	speed := star.Speed

	s.Update()
	assert.InDelta(t, 10+speed, star.Pos.Y, 1e-9, "NotStarted still scrolls")

	w.Wave = parameter.StarFastWave
	s.Update()
	assert.InDelta(t, 10+3*speed, star.Pos.Y, 1e-9, "double speed from the late waves")
}

func TestStarWrapsAtBottom(t *testing.T) {
	star := component.Star{Pos: vmath.Vec2{X: 1, Y: parameter.ArenaHeight - 1}, Speed: 2}
	star.Scroll(1)
	assert.InDelta(t, 1, star.Pos.Y, 1e-9)
}

func TestEffectDecay(t *testing.T) {
	w := newPlayingWorld()
	s := NewEffectSystem(w)
	w.Announce("hello")
	w.Shake = component.ScreenShake{Intensity: 10, Timer: 60}

	s.Update()
	assert.Equal(t, parameter.AnnouncementTicks-1, w.Announcement.Timer)
	assert.InDelta(t, 0.99, w.Announcement.Opacity, 1e-9)
	assert.Equal(t, 59, w.Shake.Timer)
	assert.InDelta(t, 9.9, w.Shake.Intensity, 1e-9)

	for range parameter.AnnouncementTicks {
		s.Update()
	}
	assert.False(t, w.Announcement.Visible())
	assert.Zero(t, w.Shake.Timer)
}
