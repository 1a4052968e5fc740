package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Body     *Body
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest body hit along direction within maxDistance.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = normalizeOr(direction, rl.Vector3{})
	if direction == (rl.Vector3{}) {
		return RaycastHit{}, false
	}

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, b := range w.bodies {
		if !b.Valid() {
			continue
		}

		var hitInfo RaycastHit
		var ok bool
		switch s := b.shape.(type) {
		case *Sphere:
			hitInfo, ok = raycastSphere(origin, direction, s, maxDistance)
		case *AABB:
			if s.RecalculateBounds() {
				hitInfo, ok = raycastBox(origin, direction, s, maxDistance)
			}
		case *Plane:
			hitInfo, ok = raycastSurface(origin, direction, s.Position(), s.Normal(), false, maxDistance)
		case *Halfspace:
			hitInfo, ok = raycastSurface(origin, direction, s.Position(), s.Normal(), true, maxDistance)
		}

		if ok && hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			closestHit.Body = b
			hit = true
		}
	}

	return closestHit, hit
}

func raycastBox(origin, direction rl.Vector3, box *AABB, maxDistance float32) (RaycastHit, bool) {
	tmin, tmax := math32.Inf(-1), math32.Inf(1)

	for i := range 3 {
		o, d := axisValue(origin, i), axisValue(direction, i)
		lo, hi := axisValue(box.Min, i), axisValue(box.Max, i)
		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case math32.Abs(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case math32.Abs(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case math32.Abs(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case math32.Abs(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case math32.Abs(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *Sphere, maxDistance float32) (RaycastHit, bool) {
	center := sphere.Center()
	radius := sphere.radius

	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	// direction is unit length, so the quadratic's a == 1
	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	root := math32.Sqrt(discriminant)
	t := -b - root
	if t < 0 {
		t = -b + root
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := normalizeOr(rl.Vector3Subtract(point, center), rl.Vector3Negate(direction))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// raycastSurface intersects a plane. For a solid halfspace an origin already
// below the boundary is a hit at distance zero.
func raycastSurface(origin, direction, position, normal rl.Vector3, solid bool, maxDistance float32) (RaycastHit, bool) {
	height := rl.Vector3DotProduct(rl.Vector3Subtract(origin, position), normal)
	if solid && height < 0 {
		return RaycastHit{Point: origin, Normal: normal, Distance: 0}, true
	}

	denom := rl.Vector3DotProduct(direction, normal)
	if math32.Abs(denom) < nearZero {
		return RaycastHit{}, false
	}
	t := -height / denom
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	n := normal
	if denom > 0 {
		n = rl.Vector3Negate(normal)
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: n, Distance: t}, true
}
