package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fixed"
	"github.com/automoto/samurai/fonts"
	"github.com/automoto/samurai/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// updateGlows restarts a body's fade while it is in contact and lets it run
// down afterwards.
func (as *ArenaScene) updateGlows(e *ecs.ECS) {
	dt := float32(1) / float32(ebiten.TPS())
	tags.Body.Each(e.World, func(entry *donburi.Entry) {
		g, ok := as.glows[entry.Entity()]
		if !ok {
			g = &glow{tween: gween.New(1, 0, cfg.UI.GlowFadeSecs, ease.OutQuad)}
			g.tween.Set(cfg.UI.GlowFadeSecs)
			as.glows[entry.Entity()] = g
		}
		if components.Collision.Get(entry).Colliding {
			g.tween.Reset()
		}
		g.alpha, _ = g.tween.Update(dt)
	})
}

// toScreen maps simulation coordinates (y = 0 on the ground, up negative)
// onto the arena's pixel space.
func (as *ArenaScene) toScreen(v fixed.Vec) (float32, float32) {
	return float32(v.X.Float()), float32(as.opts.Arena.GroundY + v.Y.Float())
}

func (as *ArenaScene) drawGround(_ *ecs.ECS, screen *ebiten.Image) {
	y := float32(as.opts.Arena.GroundY)
	w := float32(screen.Bounds().Dx())
	vector.StrokeLine(screen, 0, y, w, y, cfg.UI.GroundLineSize, cfg.UI.GroundColor, false)
}

func (as *ArenaScene) drawBodies(e *ecs.ECS, screen *ebiten.Image) {
	tags.Body.Each(e.World, func(entry *donburi.Entry) {
		p := components.Physics.Get(entry)
		c := components.Collision.Get(entry)
		cx, cy := as.toScreen(c.Mask.Center(p.Position))
		r := float32(c.Mask.Radius.Float())

		fill := cfg.UI.BodyColor
		if entry.HasComponent(tags.Player) {
			fill = cfg.UI.PlayerColor
		}
		vector.FillCircle(screen, cx, cy, r, fill, true)

		if g, ok := as.glows[entry.Entity()]; ok && g.alpha > 0 {
			vector.StrokeCircle(screen, cx, cy, r, 3, fade(cfg.UI.GlowColor, g.alpha), true)
		}

		if entry.HasComponent(components.Sprite) {
			// facing tick on the circle's edge
			dir := float32(1)
			if components.Sprite.Get(entry).Flip {
				dir = -1
			}
			vector.StrokeLine(screen, cx, cy, cx+dir*r, cy, 2, cfg.White, true)
		}
	})
}

// drawCollisionDebug outlines every broad phase proxy and each contact's
// repel direction.
func (as *ArenaScene) drawCollisionDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowCollision {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		bp := cfg.BroadPhase
		c := color.RGBA{0, 255, 255, 255}
		for _, obj := range space.Objects() {
			x := float32(obj.X - bp.OriginX)
			y := float32(obj.Y - bp.OriginY + as.opts.Arena.GroundY)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Body.Each(e.World, func(entry *donburi.Entry) {
		p := components.Physics.Get(entry)
		col := components.Collision.Get(entry)
		if !col.Colliding || col.RepelVector.IsZero() {
			return
		}
		cx, cy := as.toScreen(col.Mask.Center(p.Position))
		tip := col.RepelVector.Normalize().Scale(col.Mask.Radius)
		vector.StrokeLine(screen, cx, cy, cx+float32(tip.X.Float()), cy+float32(tip.Y.Float()), 1, cfg.Red, false)
	})
}

func (as *ArenaScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := fonts.HUD.Get()
	lineHeight := hud.Metrics().Height.Ceil()
	y := hudMargin + lineHeight

	if cfg.Debug.ShowFPS {
		text.Draw(screen, fmt.Sprintf("FPS %0.1f  TPS %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), hud, hudMargin, y, cfg.UI.HUDTextColor)
		y += lineHeight
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	st := components.PlayerState.Get(playerEntry)
	p := components.Physics.Get(playerEntry)
	text.Draw(screen, fmt.Sprintf("%s %s", st.Status, st.Facing), hud, hudMargin, y, cfg.UI.HUDTextColor)

	if !cfg.Debug.ShowCollision {
		return
	}
	small := fonts.Debug.Get()
	y += small.Metrics().Height.Ceil()
	sprite := components.Sprite.Get(playerEntry)
	lines := []string{
		fmt.Sprintf("tick %d  checksum %016x", as.world.Ticks(), as.world.Checksum()),
		fmt.Sprintf("pos %v  vel %v", p.Position, p.Velocity),
		fmt.Sprintf("input %v  sheet %d  frame %d", as.last, sprite.Sheet, sprite.Frame.Min.X/cfg.Animation.FrameWidth),
	}
	for _, line := range lines {
		text.Draw(screen, line, small, hudMargin, y, cfg.UI.HUDTextColor)
		y += small.Metrics().Height.Ceil()
	}
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	a := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: a(c.R), G: a(c.G), B: a(c.B), A: a(c.A)}
}
