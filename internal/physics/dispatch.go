package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// stepContext carries the per-step inputs some narrow-phase tests need.
type stepContext struct {
	gravity rl.Vector3
	dt      float32
}

// collideFunc tests and resolves one pair. a's shape kind is always the lower
// of the two kinds in its pairKey.
type collideFunc func(a, b *Body, ctx stepContext) bool

// pairKey is an unordered shape-kind pair with lo <= hi.
type pairKey struct {
	lo, hi ShapeKind
}

func makePairKey(a, b ShapeKind) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// collisionTable lists every supported combination. Pairs missing here
// (plane/plane, plane/halfspace, halfspace/halfspace, halfspace/aabb) are
// skipped.
var collisionTable = map[pairKey]collideFunc{
	{KindSphere, KindSphere}:    collideSpheres,
	{KindSphere, KindPlane}:     collideSpherePlane,
	{KindSphere, KindHalfspace}: collideSphereHalfspace,
	{KindSphere, KindAABB}:      collideSphereAABB,
	{KindPlane, KindAABB}:       collidePlaneAABB,
	{KindAABB, KindAABB}:        collideAABBs,
}

// Supported reports whether a narrow-phase test exists for the kind pair.
func Supported(a, b ShapeKind) bool {
	_, ok := collisionTable[makePairKey(a, b)]
	return ok
}

// collide routes a pair to its narrow-phase test. Bodies of equal kind keep
// their registry order; otherwise the lower kind goes first.
func collide(a, b *Body, ctx stepContext) (handled, collided bool) {
	ka, kb := a.shape.Kind(), b.shape.Kind()
	fn, ok := collisionTable[makePairKey(ka, kb)]
	if !ok {
		return false, false
	}
	if ka > kb {
		a, b = b, a
	}
	return true, fn(a, b, ctx)
}

// Contact records one pair that collided during a step.
type Contact struct {
	A, B *Body
}

// detectCollisions runs every unique pair i<j in registry order. Corrections
// are applied in place, so later pairs see the results of earlier ones.
func detectCollisions(bodies []*Body, ctx stepContext, onContact func(Contact)) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			// Re-check both each time: a contact callback may remove either.
			if !a.Valid() {
				break
			}
			if !b.Valid() {
				continue
			}
			if _, hit := collide(a, b, ctx); hit && onContact != nil {
				onContact(Contact{A: a, B: b})
			}
		}
	}
}

// collidePlaneAABB adapts the table's (plane, aabb) ordering.
func collidePlaneAABB(plane, box *Body, ctx stepContext) bool {
	return collideAABBPlane(box, plane, ctx)
}
