package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Integrate advances every valid non-static body by one explicit Euler step:
// gravity, then quadratic drag opposing the velocity, then position.
func Integrate(bodies []*Body, gravity rl.Vector3, dt float32) {
	for _, b := range bodies {
		if !b.Valid() || b.IsStatic {
			continue
		}

		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(gravity, b.gravityScale*dt))
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(dragForce(b.Velocity, b.drag), dt))

		b.translate(rl.Vector3Scale(b.Velocity, dt))
	}
}

// dragForce is -drag * |v|^2 * v/|v|, zero for a zero velocity.
func dragForce(v rl.Vector3, drag float32) rl.Vector3 {
	dir := normalizeOr(v, rl.Vector3{})
	return rl.Vector3Scale(dir, -drag*rl.Vector3LengthSqr(v))
}
