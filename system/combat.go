package system

import (
	"slices"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/engine"
	"github.com/lixenwraith/archon/event"
	"github.com/lixenwraith/archon/parameter"
	"github.com/lixenwraith/archon/vmath"
)

// Combat resolution shared by the entity systems
// Every outcome is a state change on the world; nothing here returns an error

// removeBullet drops bullet j, preserving order
func removeBullet(w *engine.World, j int) {
	w.Bullets = slices.Delete(w.Bullets, j, j+1)
}

// damagePlayer applies damage unless the player is invincible or the session is no longer live
// Returns true if the hit landed
func damagePlayer(w *engine.World, cause event.HitCause, amount int) bool {
	if w.Phase != engine.PhasePlaying || w.Player.Invincible {
		return false
	}

	died := w.Player.TakeDamage(amount)
	w.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
		Cause:  cause,
		Damage: amount,
		Health: w.Player.Health,
	})

	if died {
		gameOver(w)
	}
	return true
}

// resolveHostileFire checks every hostile bullet against the player once
func resolveHostileFire(w *engine.World) {
	if w.Player.Invincible {
		return
	}
	player := w.Player.Circle()

	for j := 0; j < len(w.Bullets); {
		b := &w.Bullets[j]
		if !b.IsEnemy() || !vmath.Overlaps(b.Circle(), player) {
			j++
			continue
		}

		cause := event.HitEnemyBullet
		if b.Source == component.SourceBoss {
			cause = event.HitBossBullet
		}
		damage := b.Damage()
		removeBullet(w, j)

		if !damagePlayer(w, cause, damage) || w.Phase != engine.PhasePlaying {
			return
		}
	}
}

// hitEnemy applies player bullets overlapping enemy e
// Returns true if the enemy died, in which case the kill has been awarded
func hitEnemy(w *engine.World, e *component.Enemy) bool {
	for j := 0; j < len(w.Bullets); {
		b := &w.Bullets[j]
		if b.IsEnemy() || !vmath.Overlaps(b.Circle(), e.Circle()) {
			j++
			continue
		}

		removeBullet(w, j)
		e.Health -= parameter.DamagePlayerBulletEnemy
		e.DamageFlash = parameter.DamageFlashTicks

		if e.Health <= 0 {
			awardKill(w, e)
			return true
		}
	}
	return false
}

// awardKill scores a destroyed enemy and checks for a level-up
func awardKill(w *engine.World, e *component.Enemy) {
	w.Score += parameter.ScorePerKill
	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		EnemyID: e.ID,
		Tier:    int(e.Tier),
		Score:   w.Score,
	})
	checkLevelUp(w)
}

// checkLevelUp grants one level once score/10 reaches level*10, then caps the shooting mode
func checkLevelUp(w *engine.World) {
	p := &w.Player
	if w.Score/parameter.ScorePerKill < p.Level*parameter.LevelKillsPerLevel {
		return
	}

	p.Level++
	w.PushEvent(event.EventLevelUp, &event.LevelUpPayload{Level: p.Level, Score: w.Score})
	w.Resources.Logger.Info().Int("level", p.Level).Int("score", w.Score).Msg("level up")

	capped := min(p.ShootingMode, component.LevelCapMode(p.Level, p.HasRadialMode))
	setShootingMode(w, capped)
}

// setShootingMode switches the mode, emitting an event on change
func setShootingMode(w *engine.World, mode component.ShootingMode) {
	if w.Player.ShootingMode == mode {
		return
	}
	w.Player.ShootingMode = mode
	w.PushEvent(event.EventShootingModeChange, &event.ShootingModePayload{Mode: mode.String()})
}

// collectPickup applies a consumed power-up and removes it from the world
func collectPickup(w *engine.World, p *component.Pickup) {
	player := &w.Player
	player.GrantInvincibility(parameter.InvincibilityTicks)

	switch p.Kind {
	case component.PickupWings:
		player.HasRadialMode = true
		setShootingMode(w, component.ModeRadial)
		w.Announce(parameter.AnnounceWingsGranted)
		w.Wings = nil
	case component.PickupPendant:
		w.Announce(parameter.AnnouncePendantActivated)
		w.Pendant = nil
	}

	w.PushEvent(event.EventPickupCollected, &event.PickupPayload{Kind: p.Kind.String(), X: p.Pos.X, Y: p.Pos.Y})
	w.Resources.Logger.Info().Str("pickup", p.Kind.String()).Msg("pickup collected")
}

// gameOver ends the session; the phase guard makes it fire exactly once
func gameOver(w *engine.World) {
	if !w.TransitionPhase(engine.PhaseGameOver) {
		return
	}
	w.PushEvent(event.EventGameOver, &event.GameOverPayload{
		Score: w.Score,
		Wave:  w.Wave,
		Level: w.Player.Level,
	})
	w.Resources.Logger.Info().Int("score", w.Score).Int("wave", w.Wave).Int("level", w.Player.Level).Msg("game over")
}

// victory ends the session with the boss defeated and starts the transcendence sequence
func victory(w *engine.World) {
	if w.Boss == nil || !w.TransitionPhase(engine.PhaseVictory) {
		return
	}
	origin := w.Boss.Pos
	w.Boss = nil

	w.Player.Transcendence.Active = true
	w.Shake = component.ScreenShake{
		Intensity: parameter.VictoryShakeIntensity,
		Timer:     parameter.VictoryShakeTicks,
	}
	for range parameter.VictoryParticleCount {
		w.Particles = append(w.Particles, component.NewParticle(origin, w.Rng()))
	}

	w.PushEvent(event.EventVictory, &event.VictoryPayload{
		Score: w.Score,
		Level: w.Player.Level,
		X:     origin.X,
		Y:     origin.Y,
	})
	w.Resources.Logger.Info().Int("score", w.Score).Int("level", w.Player.Level).Msg("victory")
}
