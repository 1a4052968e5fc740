package physics

import (
	"rigid3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MinMass is the floor applied to every mass assignment.
const MinMass = 0.01

// Body is the simulated state of a GameObject. Its position lives in the
// owner's Transform; everything else is held here.
type Body struct {
	engine.BaseComponent
	Velocity rl.Vector3
	IsStatic bool // excluded from integration and never moved by collisions
	Material SurfaceMaterial

	shape        Shape
	mass         float32
	drag         float32
	gravityScale float32
	restitution  float32
	removed      bool
}

// NewBody creates a dynamic body that owns shape.
func NewBody(shape Shape) *Body {
	b := &Body{
		Material:     Wood,
		shape:        shape,
		mass:         1,
		drag:         0.1,
		gravityScale: 1,
		restitution:  0.8,
	}
	if shape != nil {
		shape.bind(b)
	}
	return b
}

func (b *Body) Shape() Shape { return b.shape }

func (b *Body) Mass() float32 { return b.mass }

// SetMass clamps to MinMass.
func (b *Body) SetMass(m float32) {
	if !(m >= MinMass) || math32.IsInf(m, 0) {
		m = MinMass
	}
	b.mass = m
}

// InverseMass is zero for static bodies.
func (b *Body) InverseMass() float32 {
	if b.IsStatic {
		return 0
	}
	return 1 / b.mass
}

func (b *Body) Drag() float32 { return b.drag }

// SetDrag clamps to [0,1].
func (b *Body) SetDrag(d float32) { b.drag = clamp(d, 0, 1) }

func (b *Body) GravityScale() float32 { return b.gravityScale }

// SetGravityScale clamps to >= 0.
func (b *Body) SetGravityScale(s float32) {
	if !(s >= 0) || math32.IsInf(s, 0) {
		s = 0
	}
	b.gravityScale = s
}

func (b *Body) Restitution() float32 { return b.restitution }

// SetRestitution clamps to [0,1].
func (b *Body) SetRestitution(e float32) { b.restitution = clamp(e, 0, 1) }

// Position returns the owner's transform position.
func (b *Body) Position() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.Transform.Position
}

// SetPosition writes the owner's transform position.
func (b *Body) SetPosition(p rl.Vector3) {
	if g := b.GetGameObject(); g != nil {
		g.Transform.Position = p
	}
}

func (b *Body) translate(d rl.Vector3) {
	b.SetPosition(rl.Vector3Add(b.Position(), d))
}

// Valid reports whether the body can take part in a step: it has a shape, a
// live owner and has not been removed.
func (b *Body) Valid() bool {
	if b == nil || b.removed || b.shape == nil {
		return false
	}
	g := b.GetGameObject()
	return g != nil && !g.Destroyed()
}
