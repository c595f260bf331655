package arena

import (
	"slices"
	"time"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/system"
)

// Theme selects the background palette by wave progress
type Theme int

const (
	ThemeEarly Theme = iota // Wave < 4
	ThemeMid                // Wave < 8
	ThemeLate
)

// ThemeForWave maps a wave number to its background theme
func ThemeForWave(wave int) Theme {
	switch {
	case wave < parameter.ThemeMidWave:
		return ThemeEarly
	case wave < parameter.ThemeLateWave:
		return ThemeMid
	default:
		return ThemeLate
	}
}

// HUD is the text overlay data
type HUD struct {
	Health          int
	ArchonsDefeated int
	TotalArchons    int
	Level           int
	Wave            int
	Mode            string
	HasBoss         bool
	BossHealth      int
	Invulnerable    bool
}

// Snapshot is a read-only copy of one tick's state
// Slices and pointers are owned by the snapshot and never alias the world
type Snapshot struct {
	Frame   int64
	Elapsed time.Duration

	Phase     engine.GamePhase
	WaveState system.WaveState

	Player    component.Player
	Bullets   []component.Bullet
	Enemies   []component.Enemy
	Boss      *component.Boss
	Wings     *component.Pickup
	Pendant   *component.Pickup
	Particles []component.Particle
	Stars     []component.Star
	Nebulae   []component.Nebula

	Wave        int
	Score       int
	ArchonCount int

	Announcement component.Announcement
	Shake        component.ScreenShake
	Theme        Theme

	TranscendenceComplete bool

	HUD    HUD
	Events []event.GameEvent
}

func newSnapshot(w *engine.World, waveState system.WaveState, events []event.GameEvent) Snapshot {
	snap := Snapshot{
		Frame:   w.Resources.Time.FrameNumber,
		Elapsed: w.Resources.Time.Elapsed,

		Phase:     w.Phase,
		WaveState: waveState,

		Player:    w.Player,
		Bullets:   slices.Clone(w.Bullets),
		Enemies:   slices.Clone(w.Enemies),
		Boss:      clonePtr(w.Boss),
		Wings:     clonePtr(w.Wings),
		Pendant:   clonePtr(w.Pendant),
		Particles: slices.Clone(w.Particles),
		Stars:     slices.Clone(w.Stars),
		Nebulae:   slices.Clone(w.Nebulae),

		Wave:        w.Wave,
		Score:       w.Score,
		ArchonCount: w.ArchonCount,

		Announcement: w.Announcement,
		Shake:        w.Shake,
		Theme:        ThemeForWave(w.Wave),

		TranscendenceComplete: w.TranscendenceComplete,

		Events: slices.Clone(events),
	}

	snap.HUD = HUD{
		Health:          w.Player.Health,
		ArchonsDefeated: w.Score / parameter.ScorePerKill,
		TotalArchons:    parameter.TotalArchons,
		Level:           w.Player.Level,
		Wave:            w.Wave,
		Mode:            w.Player.ShootingMode.String(),
		Invulnerable:    w.Player.Invincible,
	}
	if w.Boss != nil {
		snap.HUD.HasBoss = true
		snap.HUD.BossHealth = w.Boss.Health
	}
	return snap
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
