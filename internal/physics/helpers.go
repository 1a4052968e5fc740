package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// nearZero is the length below which a direction is treated as degenerate.
const nearZero = 1e-6

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// clamp restricts a value to a range. NaN maps to min.
func clamp(v, min, max float32) float32 {
	if v < min || math32.IsNaN(v) {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// normalizeOr returns v scaled to unit length, or fallback when v is too
// short to carry a direction.
func normalizeOr(v, fallback rl.Vector3) rl.Vector3 {
	length := rl.Vector3Length(v)
	if length < nearZero || math32.IsNaN(length) || math32.IsInf(length, 0) {
		return fallback
	}
	return rl.Vector3Scale(v, 1/length)
}

// project returns the component of v along the unit vector n.
func project(v, n rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(n, rl.Vector3DotProduct(v, n))
}

// axisValue reads component i (0=X, 1=Y, 2=Z).
func axisValue(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// axisVector returns the unit basis vector for axis i scaled by s.
func axisVector(i int, s float32) rl.Vector3 {
	switch i {
	case 0:
		return rl.Vector3{X: s}
	case 1:
		return rl.Vector3{Y: s}
	default:
		return rl.Vector3{Z: s}
	}
}

// sign returns -1 for negative values and +1 otherwise, zero included.
func sign(v float32) float32 {
	if math32.Signbit(v) && v != 0 {
		return -1
	}
	return 1
}

// finite reports whether every component of v is a real number.
func finite(v rl.Vector3) bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
