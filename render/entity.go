package render

import (
	"math"

	"github.com/lixenwraith/archon/component"
	"github.com/lixenwraith/archon/vmath"
)

// PickupLayer draws Sophia's Wings and the Gnosis Pendant
type PickupLayer struct{}

func (PickupLayer) Priority() RenderPriority { return PriorityPickup }

func (PickupLayer) Render(ctx Context, buf *RenderBuffer) {
	for _, p := range []*component.Pickup{ctx.Snap.Wings, ctx.Snap.Pendant} {
		if p == nil {
			continue
		}
		glyph, color := '✦', RGBWings
		if p.Kind == component.PickupPendant {
			glyph, color = '◆', RGBPendant
		}
		ctx.View.CellsInCircle(p.Circle(), func(x, y int) {
			buf.BlendBg(x, y, color, 0.25)
		})
		if x, y, ok := ctx.View.ToCell(p.Pos); ok {
			buf.Set(x, y, glyph, color, 1)
		}
	}
}

// BulletLayer draws every bullet, colored by side
type BulletLayer struct{}

func (BulletLayer) Priority() RenderPriority { return PriorityBullet }

func (BulletLayer) Render(ctx Context, buf *RenderBuffer) {
	for _, b := range ctx.Snap.Bullets {
		x, y, ok := ctx.View.ToCell(b.Pos)
		if !ok {
			continue
		}
		if b.IsEnemy() {
			buf.Set(x, y, '*', RGBRed, 1)
		} else {
			buf.Set(x, y, '•', RGBYellow, 1)
		}
	}
}

// enemyGlyphs is indexed by tier
var enemyGlyphs = [...]rune{'●', '▲', '■'}

// EnemyLayer draws archons by tier, white while hit-flashing
type EnemyLayer struct{}

func (EnemyLayer) Priority() RenderPriority { return PriorityEnemy }

func (EnemyLayer) Render(ctx Context, buf *RenderBuffer) {
	for _, e := range ctx.Snap.Enemies {
		x, y, ok := ctx.View.ToCell(e.Pos)
		if !ok {
			continue
		}
		color := RGBRed
		if e.DamageFlash > 0 {
			color = RGBWhite
		}
		glyph := enemyGlyphs[vmath.ClampInt(int(e.Tier), 0, len(enemyGlyphs)-1)]
		buf.Set(x, y, glyph, color, 1)
	}
}

// BossLayer draws the Demiurge as a filled disc with a glow
type BossLayer struct{}

func (BossLayer) Priority() RenderPriority { return PriorityBoss }

func (BossLayer) Render(ctx Context, buf *RenderBuffer) {
	b := ctx.Snap.Boss
	if b == nil {
		return
	}
	color := RGBPurple
	if b.DamageFlash > 0 {
		color = RGBWhite
	}

	glow := b.Circle()
	glow.R *= 1.4
	ctx.View.CellsInCircle(glow, func(x, y int) {
		buf.BlendBg(x, y, RGBPurple, 0.3)
	})
	ctx.View.CellsInCircle(b.Circle(), func(x, y int) {
		buf.Set(x, y, '▓', color, 1)
	})
}

// facingGlyphs point along the eight compass octants starting east, clockwise on screen
var facingGlyphs = [...]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// PlayerLayer draws the player with facing, hit flash, invulnerability pulse and transcendence
type PlayerLayer struct{}

func (PlayerLayer) Priority() RenderPriority { return PriorityPlayer }

func (PlayerLayer) Render(ctx Context, buf *RenderBuffer) {
	snap := ctx.Snap
	p := snap.Player

	opacity := 1.0
	radius := p.Circle().R
	switch {
	case p.Transcendence.Active:
		opacity = p.Transcendence.Opacity
		radius *= p.Transcendence.Scale
	case p.Invincible:
		opacity = 0.7 + 0.3*math.Sin(float64(snap.Frame)/6)
	}

	color := RGBPlayer
	if p.DamageFlash > 0 {
		color = color.BlendRgb(RGBRed, 0.5)
	}

	if p.Transcendence.Active {
		ctx.View.CellsInCircle(vmath.Circle{X: p.Pos.X, Y: p.Pos.Y, R: radius}, func(x, y int) {
			buf.BlendBg(x, y, RGBWhite, opacity*0.5)
		})
	}

	if x, y, ok := ctx.View.ToCell(p.Pos); ok {
		buf.Set(x, y, facingGlyph(p.Angle), color, opacity)
	}
}

// facingGlyph picks the arrow closest to angle
func facingGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return facingGlyphs[octant]
}

// ParticleLayer draws victory sparks fading out
type ParticleLayer struct{}

func (ParticleLayer) Priority() RenderPriority { return PriorityParticle }

func (ParticleLayer) Render(ctx Context, buf *RenderBuffer) {
	for _, p := range ctx.Snap.Particles {
		if x, y, ok := ctx.View.ToCell(p.Pos); ok {
			buf.Set(x, y, '✶', RGBSpark, p.Opacity)
		}
	}
}
