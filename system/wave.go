package system

import (
	"fmt"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// WaveState is the wave director phase derived from the world
type WaveState int

const (
	WaveIdle     WaveState = iota // No wave spawned yet
	WaveSpawning                  // Enemies of the current wave alive
	WaveCleared                   // Waiting for the next random spawn
	WaveBoss                      // Boss alive
	WaveVictory
	WaveGameOver
)

var waveStateNames = [...]string{"Idle", "Spawning", "Cleared", "Boss", "Victory", "GameOver"}

func (s WaveState) String() string {
	if s < 0 || int(s) >= len(waveStateNames) {
		return "Unknown"
	}
	return waveStateNames[s]
}

// WaveSystem spawns waves of archons and triggers the boss once they are exhausted
type WaveSystem struct {
	world   *engine.World
	enabled bool
}

func NewWaveSystem(world *engine.World) *WaveSystem {
	s := &WaveSystem{world: world}
	s.Init()
	return s
}

func (s *WaveSystem) Init() {
	s.enabled = true
}

func (s *WaveSystem) Name() string { return "wave" }

func (s *WaveSystem) Priority() int { return parameter.PriorityWave }

func (s *WaveSystem) Update() {
	if !s.enabled || s.world.Phase != engine.PhasePlaying {
		return
	}

	if s.world.Rng().Chance(parameter.WaveSpawnChance) {
		s.SpawnWave()
	}
	s.maybeSpawnBoss()
}

// State reports the director phase for the snapshot
func (s *WaveSystem) State() WaveState {
	w := s.world
	switch {
	case w.Phase == engine.PhaseGameOver:
		return WaveGameOver
	case w.Phase == engine.PhaseVictory:
		return WaveVictory
	case w.Boss != nil:
		return WaveBoss
	case len(w.Enemies) > 0:
		return WaveSpawning
	case w.Wave == 0:
		return WaveIdle
	default:
		return WaveCleared
	}
}

// SpawnWave starts the next wave if the arena is clear and archons remain
// Returns false when the preconditions do not hold
func (s *WaveSystem) SpawnWave() bool {
	w := s.world
	if w.ArchonCount >= parameter.TotalArchons || w.Boss != nil || len(w.Enemies) > 0 {
		return false
	}

	w.Wave++
	tier := component.TierForWave(w.Wave)
	difficulty := parameter.WaveDifficultyNames[tier]
	w.Announce(fmt.Sprintf("Wave %d - %s", w.Wave, difficulty))

	rng := w.Rng()
	for range parameter.ArchonsPerWave {
		w.Enemies = append(w.Enemies, component.NewEnemy(w.NextEnemyID(), edgeSpawn(rng), tier))
		w.ArchonCount++
	}

	w.PushEvent(event.EventWaveStart, &event.WaveStartPayload{
		Wave:        w.Wave,
		Tier:        int(tier),
		Difficulty:  difficulty,
		ArchonCount: w.ArchonCount,
	})
	w.Resources.Logger.Info().Int("wave", w.Wave).Str("difficulty", difficulty).Int("archons", w.ArchonCount).Msg("wave start")

	if w.Wave == parameter.WingsWave && !w.WingsSpawned {
		wings := component.NewWings()
		w.Wings = &wings
		w.WingsSpawned = true
		w.PushEvent(event.EventPickupSpawn, &event.PickupPayload{Kind: wings.Kind.String(), X: wings.Pos.X, Y: wings.Pos.Y})
	}
	return true
}

// maybeSpawnBoss brings in the boss once every archon has been spawned and cleared
func (s *WaveSystem) maybeSpawnBoss() {
	w := s.world
	if w.ArchonCount < parameter.TotalArchons || len(w.Enemies) > 0 || w.Boss != nil || w.BossSpawned {
		return
	}

	boss := component.NewBoss()
	w.Boss = &boss
	w.BossSpawned = true
	w.Announce(parameter.AnnounceBossApproaches)
	w.PushEvent(event.EventBossSpawn, nil)
	w.Resources.Logger.Info().Msg("boss spawn")
}

// edgeSpawn picks a point just outside a random arena edge
func edgeSpawn(rng *vmath.FastRand) vmath.Vec2 {
	m := parameter.WaveSpawnMargin
	switch rng.Intn(4) {
	case 0:
		return vmath.Vec2{X: rng.Range(0, parameter.ArenaWidth), Y: -m}
	case 1:
		return vmath.Vec2{X: rng.Range(0, parameter.ArenaWidth), Y: parameter.ArenaHeight + m}
	case 2:
		return vmath.Vec2{X: -m, Y: rng.Range(0, parameter.ArenaHeight)}
	default:
		return vmath.Vec2{X: parameter.ArenaWidth + m, Y: rng.Range(0, parameter.ArenaHeight)}
	}
}
