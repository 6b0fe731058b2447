package systems

import (
	"image"

	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimation derives each fighter's sprite from its state. It only reads
// simulation state; nothing in the simulation reads the sprite back.
func UpdateAnimation(w donburi.World) {
	components.Sprite.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.PlayerState) || !e.HasComponent(components.Physics) {
			return
		}
		sprite := components.Sprite.Get(e)
		ProjectSprite(sprite, components.PlayerState.Get(e), components.Physics.Get(e))
		if e.HasComponent(components.Collision) {
			sprite.Glow = components.Collision.Get(e).Colliding
		}
	})
}

// ProjectSprite advances one tick of presentation for a fighter.
func ProjectSprite(sprite *components.SpriteData, st *components.PlayerStateData, p *components.PhysicsData) {
	def := cfg.StatusAnimations[st.Status]
	sprite.Wrap = def.Wrap
	sprite.Rate = def.Rate
	if st.Status == cfg.Running && p.Velocity.X.Abs() > cfg.Animation.FastRunSpeed {
		sprite.Rate = cfg.FastRunRate
	}
	sprite.Flip = st.Facing.Flip()

	fw, fh := cfg.Animation.FrameWidth, cfg.Animation.FrameHeight
	x := sprite.Frame.Min.X
	if sprite.Sheet != def.Sheet || sprite.Frame.Empty() {
		sprite.Sheet = def.Sheet
		sprite.Counter = 0
		x = 0
	}

	sprite.Counter++
	if sprite.Counter > sprite.Rate {
		x = (x + fw) % sprite.Wrap
		sprite.Counter = 0
	}
	sprite.Frame = image.Rect(x, 0, x+fw, fh)
}
