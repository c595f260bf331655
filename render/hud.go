package render

import (
	"fmt"

	"github.com/lixenwraith/archon/engine"
)

// HUDLayer writes the status lines in the top-left corner while a run is on
type HUDLayer struct{}

func (HUDLayer) Priority() RenderPriority { return PriorityUI }

func (HUDLayer) Render(ctx Context, buf *RenderBuffer) {
	snap := ctx.Snap
	if snap.Phase == engine.PhaseNotStarted {
		return
	}
	hud := snap.HUD

	lines := []string{
		fmt.Sprintf("Health: %d", hud.Health),
		fmt.Sprintf("Archons Defeated: %d/%d", hud.ArchonsDefeated, hud.TotalArchons),
		fmt.Sprintf("Level: %d", hud.Level),
		fmt.Sprintf("Wave: %d", hud.Wave),
		fmt.Sprintf("Shooting Mode: %s", hud.Mode),
	}
	if hud.HasBoss {
		lines = append(lines, fmt.Sprintf("Demiurge Health: %d", hud.BossHealth))
	}
	if hud.Invulnerable {
		lines = append(lines, "Invulnerability: Active")
	}

	for i, line := range lines {
		buf.WriteString(1, i, line, RGBHUD, false)
	}
}

// OverlayLayer draws the fading announcement and the phase banners
type OverlayLayer struct{}

func (OverlayLayer) Priority() RenderPriority { return PriorityOverlay }

func (OverlayLayer) Render(ctx Context, buf *RenderBuffer) {
	snap := ctx.Snap
	_, h := buf.Size()
	mid := h / 2

	if a := snap.Announcement; a.Visible() {
		buf.WriteCentered(h/4, a.Text, Fade(RGBBlack, RGBWhite, a.Opacity), true)
	}

	switch snap.Phase {
	case engine.PhaseNotStarted:
		buf.WriteCentered(mid-1, "A R C H O N", RGBWings, true)
		buf.WriteCentered(mid+1, "Press Enter to begin", RGBWhite, false)
		buf.WriteCentered(mid+2, "wasd move · mouse or ijkl aim · space/click fire · q/e or wheel cycle", RGBWhite, false)
	case engine.PhaseGameOver:
		buf.WriteCentered(mid-1, "GAME OVER", RGBRed, true)
		buf.WriteCentered(mid+1, fmt.Sprintf("Score %d · Wave %d · Level %d", snap.Score, snap.Wave, snap.Player.Level), RGBWhite, false)
		buf.WriteCentered(mid+2, "Press r to restart", RGBWhite, false)
	case engine.PhaseVictory:
		if snap.TranscendenceComplete {
			buf.WriteCentered(mid-1, "TRANSCENDENCE", RGBWings, true)
			buf.WriteCentered(mid+1, "The Demiurge has fallen", RGBWhite, false)
			buf.WriteCentered(mid+2, "Press r to restart", RGBWhite, false)
		}
	}
}
