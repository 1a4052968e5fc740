package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// sweptSphereAABB casts a ray from origin along the unit vector dir against
// box grown by radius on every side (slab method). It returns the entry
// distance, which is negative when origin already lies in the grown box.
func sweptSphereAABB(origin, dir rl.Vector3, box *AABB, radius float32) (float32, bool) {
	tNear, tFar := math32.Inf(-1), math32.Inf(1)

	for i := range 3 {
		o := axisValue(origin, i)
		d := axisValue(dir, i)
		lo := axisValue(box.Min, i) - radius
		hi := axisValue(box.Max, i) + radius

		// Parallel to this slab: inside it for the whole ray or never.
		if math32.Abs(d) < nearZero {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = max(tNear, t1)
		tFar = min(tFar, t2)
		if tNear > tFar || tFar < 0 {
			return 0, false
		}
	}

	return tNear, true
}

// SweptAABB reports whether box a, displaced by moveA over one frame, meets
// box b displaced by moveB in the same frame. The returned time of impact is
// normalized to [0,1]; boxes that already overlap report 0.
func SweptAABB(a, b *AABB, moveA, moveB rl.Vector3) (float32, bool) {
	rel := rl.Vector3Subtract(moveA, moveB)
	tMin, tMax := float32(0), float32(1)

	for i := range 3 {
		v := axisValue(rel, i)
		aMin, aMax := axisValue(a.Min, i), axisValue(a.Max, i)
		bMin, bMax := axisValue(b.Min, i), axisValue(b.Max, i)

		if math32.Abs(v) < nearZero {
			// No relative motion on this axis: the projections must already overlap.
			if aMax < bMin || bMax < aMin {
				return 0, false
			}
			continue
		}

		entry := (bMin - aMax) / v
		exit := (bMax - aMin) / v
		if entry > exit {
			entry, exit = exit, entry
		}
		tMin = max(tMin, entry)
		tMax = min(tMax, exit)
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, tMin <= 1
}
