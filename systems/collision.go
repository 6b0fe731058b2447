package systems

import (
	"sort"

	"github.com/automoto/samurai/components"
	"github.com/automoto/samurai/fixed"
	"github.com/automoto/samurai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type body struct {
	entry     *donburi.Entry
	physics   *components.PhysicsData
	collision *components.CollisionData
}

type pair struct{ a, b int }

// UpdateCollisions detects overlapping circles and cancels the part of each
// body's motion that points into the bodies it overlaps. Bodies are never
// moved apart; they may rest overlapping.
func UpdateCollisions(w donburi.World) {
	bodies := collectBodies(w)
	for _, b := range bodies {
		b.collision.Colliding = false
		b.collision.RepelVector = fixed.Vec{}
	}

	var pairs []pair
	if _, ok := components.Space.First(w); ok {
		pairs = broadPhasePairs(bodies)
	} else {
		pairs = allPairs(len(bodies))
	}

	for _, pr := range pairs {
		a, b := bodies[pr.a], bodies[pr.b]
		if !overlaps(a, b) {
			continue
		}
		a.collision.Colliding = true
		b.collision.Colliding = true
		a.collision.RepelVector = a.collision.RepelVector.Add(a.physics.Position.Sub(b.physics.Position).Normalize())
		b.collision.RepelVector = b.collision.RepelVector.Add(b.physics.Position.Sub(a.physics.Position).Normalize())
	}

	// Every repel vector is final before any motion is corrected.
	for _, b := range bodies {
		if b.collision.RepelVector.IsZero() {
			continue
		}
		repel(b.physics, b.collision.RepelVector.Normalize())
	}
}

func collectBodies(w donburi.World) []body {
	var bodies []body
	tags.Body.Each(w, func(e *donburi.Entry) {
		mustHave(e, components.Physics, components.Collision)
		bodies = append(bodies, body{
			entry:     e,
			physics:   components.Physics.Get(e),
			collision: components.Collision.Get(e),
		})
	})
	return bodies
}

// overlaps compares squared distances exactly in 64-bit raw units.
func overlaps(a, b body) bool {
	ca := a.collision.Mask.Center(a.physics.Position)
	cb := b.collision.Mask.Center(b.physics.Position)
	r := int64(a.collision.Mask.Radius) + int64(b.collision.Mask.Radius)
	return ca.Sub(cb).LenSqWide() <= r*r
}

// repel removes the inward component of velocity and acceleration along n,
// then keeps the corrected motion from carrying the body through the ground.
// That second step goes further than removing the inward part: when the
// remaining motion still points below the ground and into the partner, the
// whole vector is dropped, tangential component included.
func repel(p *components.PhysicsData, n fixed.Vec) {
	if n.IsZero() {
		return
	}
	p.Velocity = p.Velocity.RemoveInward(n)
	p.Acceleration = p.Acceleration.RemoveInward(n)

	if p.Position.Y+p.Velocity.Y+p.Acceleration.Y <= 0 {
		return
	}
	p.Acceleration.Y = p.Acceleration.Y.Min(fixed.Zero)
	if p.Acceleration.DotWide(n) < 0 {
		p.Acceleration = fixed.Vec{}
	}
	p.Velocity.Y = p.Velocity.Y.Min(p.Position.Y.Neg() - p.Acceleration.Y)
	if p.Velocity.DotWide(n) < 0 {
		p.Velocity = fixed.Vec{}
	}
}

func allPairs(n int) []pair {
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	return pairs
}

// broadPhasePairs asks the spatial hash for candidates. A body without a
// proxy is paired with everything. The result is deduplicated and sorted so
// the narrow phase visits pairs in the same order as allPairs.
func broadPhasePairs(bodies []body) []pair {
	index := make(map[*resolv.Object]int, len(bodies))
	for i, b := range bodies {
		if b.entry.HasComponent(components.Object) {
			if obj := components.Object.Get(b.entry).Object; obj != nil {
				index[obj] = i
			}
		}
	}

	seen := make(map[pair]bool)
	add := func(i, j int) {
		if i == j {
			return
		}
		if j < i {
			i, j = j, i
		}
		seen[pair{i, j}] = true
	}

	for i, b := range bodies {
		if !b.entry.HasComponent(components.Object) || components.Object.Get(b.entry).Object == nil {
			for j := range bodies {
				add(i, j)
			}
			continue
		}
		check := components.Object.Get(b.entry).Check(0, 0, tags.ResolvBody)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			if j, ok := index[o]; ok {
				add(i, j)
			}
		}
	}

	pairs := make([]pair, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].a != pairs[y].a {
			return pairs[x].a < pairs[y].a
		}
		return pairs[x].b < pairs[y].b
	})
	return pairs
}
