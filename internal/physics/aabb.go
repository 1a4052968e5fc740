package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// BoundsSource supplies local-space bounds (a mesh's bounding box) that an
// AABB scales by the owner's world scale and offsets by its position.
type BoundsSource interface {
	LocalBounds() rl.BoundingBox
}

// BoxBounds is a BoundsSource for a box of the given full size centered on
// the pivot.
type BoxBounds rl.Vector3

func (b BoxBounds) LocalBounds() rl.BoundingBox {
	half := rl.Vector3Scale(rl.Vector3(b), 0.5)
	return rl.NewBoundingBox(rl.Vector3Negate(half), half)
}

// AABB is an axis-aligned box whose world-space Min/Max are recomputed from
// Source before every test.
type AABB struct {
	Min    rl.Vector3
	Max    rl.Vector3
	Source BoundsSource

	valid bool
	owner *Body
}

func NewAABB(source BoundsSource) *AABB {
	return &AABB{Source: source}
}

// NewAABBFromCenter creates an AABB with fixed world bounds from a center
// point and full size. Without a source, RecalculateBounds leaves them as-is.
func NewAABBFromCenter(center, size rl.Vector3) *AABB {
	half := rl.Vector3Scale(size, 0.5)
	a := &AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
	a.valid = true
	a.normalize()
	return a
}

func (a *AABB) Kind() ShapeKind { return KindAABB }

func (a *AABB) bind(owner *Body) { a.owner = owner }

// Valid reports whether the bounds have ever been computed.
func (a *AABB) Valid() bool { return a.valid }

// RecalculateBounds recomputes Min/Max from the source, the owner's position
// and its world scale. When the source or owner is missing the previous
// bounds stay in place. It returns Valid().
func (a *AABB) RecalculateBounds() bool {
	if a.Source == nil || a.owner == nil || a.owner.GetGameObject() == nil {
		return a.valid
	}
	local := a.Source.LocalBounds()
	g := a.owner.GetGameObject()
	pos := a.owner.Position()
	scale := g.WorldScale()
	a.Min = rl.Vector3Add(pos, rl.Vector3Multiply(local.Min, scale))
	a.Max = rl.Vector3Add(pos, rl.Vector3Multiply(local.Max, scale))
	a.normalize()
	a.valid = finite(a.Min) && finite(a.Max)
	return a.valid
}

// normalize restores min <= max after a negative scale.
func (a *AABB) normalize() {
	lo := rl.Vector3Min(a.Min, a.Max)
	hi := rl.Vector3Max(a.Min, a.Max)
	a.Min, a.Max = lo, hi
}

func (a *AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a *AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// ClosestPoint clamps p into the box.
func (a *AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Max(a.Min, rl.Vector3Min(p, a.Max))
}

func (a *AABB) Intersects(b *AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Corners returns the eight box vertices.
func (a *AABB) Corners() [8]rl.Vector3 {
	lo, hi := a.Min, a.Max
	return [8]rl.Vector3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
	}
}

// overlaps returns the per-axis penetration min(maxA-minB, maxB-minA).
func (a *AABB) overlaps(b *AABB) [3]float32 {
	var out [3]float32
	for i := range 3 {
		out[i] = min(
			axisValue(a.Max, i)-axisValue(b.Min, i),
			axisValue(b.Max, i)-axisValue(a.Min, i),
		)
	}
	return out
}
