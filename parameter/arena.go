package parameter

// Arena bounds, in arena units; the renderer scales them to terminal cells
const (
	// ArenaWidth is the playfield width
	ArenaWidth = 800.0

	// ArenaHeight is the playfield height
	ArenaHeight = 600.0
)

// Wave progression
const (
	// TotalArchons is the number of enemies spawned across all waves before the boss
	TotalArchons = 100

	// ArchonsPerWave is the number of enemies spawned per wave
	ArchonsPerWave = 10

	// WaveSpawnChance is the per-tick probability that a cleared arena spawns the next wave
	WaveSpawnChance = 0.02

	// WaveTierStep is the number of waves per tier increase
	WaveTierStep = 4

	// WaveMaxTier caps the tier of spawned enemies
	WaveMaxTier = 2

	// WaveSpawnMargin is how far outside the canvas edge enemies appear
	WaveSpawnMargin = 20.0

	// WingsWave is the wave at which Sophia's Wings appears
	WingsWave = 6
)

// WaveDifficultyNames labels tiers in wave announcements
var WaveDifficultyNames = [...]string{"Easy", "Medium", "Hard"}

// Background
const (
	// StarCount is the number of background stars
	StarCount = 100

	// NebulaCount is the number of background nebulae
	NebulaCount = 5

	// StarFastWave is the wave from which stars scroll at double speed
	StarFastWave = 8

	// ThemeMidWave and ThemeLateWave switch the background theme
	ThemeMidWave  = 4
	ThemeLateWave = 8
)
