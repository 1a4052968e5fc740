package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// collideAABBs separates two boxes along the single axis of least overlap.
// The impulse uses only a's restitution.
func collideAABBs(a, b *Body, _ stepContext) bool {
	boxA, boxB := a.shape.(*AABB), b.shape.(*AABB)
	if !boxA.RecalculateBounds() || !boxB.RecalculateBounds() {
		return false
	}

	overlaps := boxA.overlaps(boxB)
	if !(overlaps[0] > 0 && overlaps[1] > 0 && overlaps[2] > 0) {
		return false
	}

	axis := 0
	for i := 1; i < 3; i++ {
		if overlaps[i] < overlaps[axis] {
			axis = i
		}
	}

	normal := axisVector(axis, sign(axisValue(boxA.Min, axis)-axisValue(boxB.Min, axis)))
	separate(a, b, rl.Vector3Scale(normal, overlaps[axis]))

	invSum := a.InverseMass() + b.InverseMass()
	if invSum == 0 {
		return true
	}
	relVel := rl.Vector3Subtract(a.Velocity, b.Velocity)
	j := rl.Vector3DotProduct(relVel, normal) * (1 + a.restitution) / invSum
	applyImpulse(a, b, normal, j)
	return true
}

// collideAABBPlane lifts the box by its deepest corner below the plane and
// bounces it with a fixed 0.8 restitution.
func collideAABBPlane(boxBody, planeBody *Body, _ stepContext) bool {
	box := boxBody.shape.(*AABB)
	plane := planeBody.shape.(*Plane)
	if !box.RecalculateBounds() {
		return false
	}

	normal := plane.Normal()
	origin := plane.Position()

	overlapping := false
	var penetration float32
	for _, corner := range box.Corners() {
		d := rl.Vector3DotProduct(rl.Vector3Subtract(corner, origin), normal)
		if d < 0 {
			overlapping = true
			penetration = max(penetration, -d)
		}
	}
	if !overlapping {
		return false
	}
	if boxBody.IsStatic {
		return true
	}

	boxBody.translate(rl.Vector3Scale(normal, penetration))
	v := boxBody.Velocity
	boxBody.Velocity = rl.Vector3Subtract(v, rl.Vector3Scale(normal, (1+surfaceRestitution)*rl.Vector3DotProduct(v, normal)))
	return true
}

// collideSphereAABB tests the sphere's current position first and falls back
// to a swept test along this step's motion so fast spheres don't tunnel.
// Only the sphere is moved.
func collideSphereAABB(sphereBody, boxBody *Body, ctx stepContext) bool {
	sphere := sphereBody.shape.(*Sphere)
	box := boxBody.shape.(*AABB)
	if !box.RecalculateBounds() {
		return false
	}

	start := sphereBody.Position()
	radius := sphere.radius

	closest := box.ClosestPoint(start)
	distSq := rl.Vector3LengthSqr(rl.Vector3Subtract(start, closest))
	if distSq <= radius*radius {
		if sphereBody.IsStatic {
			return true
		}
		// Center inside the box: no closest-point direction, push up.
		normal := normalizeOr(rl.Vector3Subtract(start, closest), worldUp)
		penetration := radius - math32.Sqrt(distSq)
		sphereBody.translate(rl.Vector3Scale(normal, penetration))
		sphereBody.Velocity = rl.Vector3Scale(rl.Vector3Reflect(sphereBody.Velocity, normal), sphereBody.restitution)
		return true
	}

	if sphereBody.IsStatic {
		return false
	}

	motion := rl.Vector3Scale(sphereBody.Velocity, ctx.dt)
	travel := rl.Vector3Length(motion)
	if !(travel > nearZero) {
		return false
	}
	dir := rl.Vector3Scale(motion, 1/travel)

	t, ok := sweptSphereAABB(start, dir, box, radius)
	if !ok || t < 0 || t > travel {
		return false
	}

	hit := rl.Vector3Add(start, rl.Vector3Scale(dir, t))
	contact := box.ClosestPoint(hit)
	normal := normalizeOr(rl.Vector3Subtract(hit, contact), rl.Vector3Negate(dir))

	sphereBody.SetPosition(rl.Vector3Add(contact, rl.Vector3Scale(normal, radius)))
	sphereBody.Velocity = rl.Vector3Scale(rl.Vector3Reflect(sphereBody.Velocity, normal), sphereBody.restitution)
	return true
}
