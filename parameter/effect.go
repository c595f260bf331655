package parameter

// Announcements
const (
	// AnnouncementTicks is how long an announcement stays on screen
	AnnouncementTicks = 120

	// AnnouncementFadeStep is the per-tick opacity loss of an announcement
	AnnouncementFadeStep = 0.01
)

// Announcement texts
const (
	AnnounceInvulnerabilityFades = "Invulnerability Fades!"
	AnnounceWingsGranted         = "Sophia's Blessing Granted!"
	AnnouncePendantActivated     = "Gnosis Pendant Activated!"
	AnnounceBossApproaches       = "Demiurge Approaches!"
)

// Victory effects
const (
	// VictoryShakeIntensity is the initial screen shake intensity
	VictoryShakeIntensity = 10.0

	// VictoryShakeTicks is the screen shake duration
	VictoryShakeTicks = 60

	// ShakeDecayStep is the per-tick intensity loss
	ShakeDecayStep = 0.1

	// VictoryParticleCount is the number of particles released at the boss position
	VictoryParticleCount = 50
)

// Particles
const (
	// ParticleRadiusMin and ParticleRadiusMax bound the particle size
	ParticleRadiusMin = 2.0
	ParticleRadiusMax = 7.0

	// ParticleSpeedSpread is the full range of each velocity axis, centered on zero
	ParticleSpeedSpread = 5.0

	// ParticleFadeStep is the per-tick opacity loss
	ParticleFadeStep = 0.02
)
