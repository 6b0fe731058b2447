package systems

import (
	"math"

	"github.com/automoto/samurai/components"
	cfg "github.com/automoto/samurai/config"
	"github.com/automoto/samurai/fixed"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every broad phase proxy onto its body's circle. Must
// run before UpdateCollisions whenever the world has a space.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		if obj.Object == nil || !e.HasComponent(components.Physics) || !e.HasComponent(components.Collision) {
			continue
		}
		PlaceObject(obj.Object, components.Physics.Get(e).Position, components.Collision.Get(e).Mask)
		obj.Update()
	}
}

// PlaceObject sets obj to the bounding box of the mask, inflated by the
// configured margin, shifted into space coordinates and clamped inside the
// space so bodies past its edges still share the edge cells.
func PlaceObject(obj *resolv.Object, position fixed.Vec, mask components.CircleMask) {
	bp := cfg.BroadPhase
	c := mask.Center(position)
	r := mask.Radius.Float() + bp.Margin

	x0, x1 := clampSpan(c.X.Float()+bp.OriginX-r, c.X.Float()+bp.OriginX+r, float64(bp.Width))
	y0, y1 := clampSpan(c.Y.Float()+bp.OriginY-r, c.Y.Float()+bp.OriginY+r, float64(bp.Height))

	obj.X, obj.Y = x0, y0
	obj.W, obj.H = x1-x0, y1-y0
}

// NewObject creates a proxy already placed for the given body.
func NewObject(position fixed.Vec, mask components.CircleMask, tags ...string) *resolv.Object {
	obj := resolv.NewObject(0, 0, 1, 1, tags...)
	PlaceObject(obj, position, mask)
	return obj
}

// clampSpan limits [lo, hi] to [0, size-1] and keeps it at least one pixel wide.
func clampSpan(lo, hi, size float64) (float64, float64) {
	maxEdge := size - 2
	lo = math.Min(math.Max(lo, 0), maxEdge)
	hi = math.Min(math.Max(hi, 0), maxEdge)
	if hi-lo < 1 {
		hi = lo + 1
	}
	return lo, hi
}
