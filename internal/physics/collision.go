package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// surfaceRestitution is the fixed bounce used against planes.
	surfaceRestitution = 0.8
	// surfaceFriction scales the friction force on a sphere touching a plane.
	surfaceFriction = 0.5
)

// separate moves a along mtv and b against it. Two dynamic bodies split the
// translation evenly; a lone dynamic body takes all of it.
func separate(a, b *Body, mtv rl.Vector3) {
	switch {
	case !a.IsStatic && !b.IsStatic:
		half := rl.Vector3Scale(mtv, 0.5)
		a.translate(half)
		b.translate(rl.Vector3Negate(half))
	case !a.IsStatic:
		a.translate(mtv)
	case !b.IsStatic:
		b.translate(rl.Vector3Negate(mtv))
	}
}

// applyImpulse removes j along normal from a and adds it to b, each scaled
// by inverse mass. Static bodies are left untouched.
func applyImpulse(a, b *Body, normal rl.Vector3, j float32) {
	impulse := rl.Vector3Scale(normal, j)
	if !a.IsStatic {
		a.Velocity = rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(impulse, a.InverseMass()))
	}
	if !b.IsStatic {
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, b.InverseMass()))
	}
}

// collideSpheres handles sphere vs sphere
func collideSpheres(a, b *Body, _ stepContext) bool {
	sa, sb := a.shape.(*Sphere), b.shape.(*Sphere)

	displacement := rl.Vector3Subtract(a.Position(), b.Position())
	distance := rl.Vector3Length(displacement)
	overlap := sa.radius + sb.radius - distance
	if !(overlap > 0) {
		return false
	}

	// Coincident centers have no direction; push along world up.
	normal := normalizeOr(displacement, worldUp)

	invSum := a.InverseMass() + b.InverseMass()
	if invSum == 0 {
		return true
	}

	e := (a.restitution + b.restitution) / 2
	relVel := rl.Vector3Subtract(a.Velocity, b.Velocity)
	j := (1 + e) * rl.Vector3DotProduct(relVel, normal) / invSum
	applyImpulse(a, b, normal, j)

	separate(a, b, rl.Vector3Scale(normal, overlap))
	return true
}

// collideSpherePlane pushes the sphere off a two-sided plane, then applies
// tangential gravity and friction before a fixed 0.8 bounce.
func collideSpherePlane(sphereBody, planeBody *Body, ctx stepContext) bool {
	sphere := sphereBody.shape.(*Sphere)
	plane := planeBody.shape.(*Plane)

	normal := plane.Normal()
	distance := rl.Vector3DotProduct(rl.Vector3Subtract(sphere.Center(), plane.Position()), normal)
	if !(math32.Abs(distance) < sphere.radius) {
		return false
	}
	if sphereBody.IsStatic {
		return true
	}

	sphereBody.translate(rl.Vector3Scale(normal, sphere.radius-math32.Abs(distance)))

	g := ctx.gravity
	normalForce := rl.Vector3Length(g) * sphereBody.mass
	gravityTangent := rl.Vector3Subtract(rl.Vector3Scale(g, sphereBody.gravityScale), project(g, normal))
	friction := rl.Vector3Scale(normalizeOr(sphereBody.Velocity, rl.Vector3{}), -surfaceFriction*normalForce)

	v := rl.Vector3Add(sphereBody.Velocity, rl.Vector3Scale(rl.Vector3Add(gravityTangent, friction), ctx.dt))
	v = rl.Vector3Subtract(v, rl.Vector3Scale(normal, (1+surfaceRestitution)*rl.Vector3DotProduct(v, normal)))
	sphereBody.Velocity = v
	return true
}

// collideSphereHalfspace pushes the sphere back above the boundary and stops
// it dead.
func collideSphereHalfspace(sphereBody, halfspaceBody *Body, _ stepContext) bool {
	sphere := sphereBody.shape.(*Sphere)
	hs := halfspaceBody.shape.(*Halfspace)

	normal := hs.Normal()
	along := rl.Vector3DotProduct(rl.Vector3Subtract(sphere.Center(), hs.Position()), normal)
	if !(along < sphere.radius) {
		return false
	}
	if sphereBody.IsStatic {
		return true
	}

	sphereBody.translate(rl.Vector3Scale(normal, sphere.radius-along))
	sphereBody.Velocity = rl.Vector3{}
	return true
}
