package physics

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeKind tags the closed set of collision primitives.
type ShapeKind int

const (
	KindSphere ShapeKind = iota
	KindPlane
	KindHalfspace
	KindAABB

	numShapeKinds
)

func (k ShapeKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindHalfspace:
		return "halfspace"
	case KindAABB:
		return "aabb"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ParseShapeKind accepts the names produced by ShapeKind.String, case-insensitively.
func ParseShapeKind(s string) (ShapeKind, error) {
	for k := ShapeKind(0); k < numShapeKinds; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// Shape is one of *Sphere, *Plane, *Halfspace or *AABB. The set is closed:
// the unexported bind method keeps other packages from adding variants.
type Shape interface {
	Kind() ShapeKind
	bind(owner *Body)
}

// MinRadius is the smallest radius a sphere may have.
const MinRadius = 0.01

type Sphere struct {
	radius float32
	owner  *Body
}

func NewSphere(radius float32) *Sphere {
	s := &Sphere{}
	s.SetRadius(radius)
	return s
}

func (s *Sphere) Kind() ShapeKind { return KindSphere }

func (s *Sphere) bind(owner *Body) { s.owner = owner }

func (s *Sphere) Radius() float32 { return s.radius }

// SetRadius clamps to MinRadius.
func (s *Sphere) SetRadius(r float32) {
	if !(r >= MinRadius) {
		r = MinRadius
	}
	s.radius = r
}

// Center is the owning body's position.
func (s *Sphere) Center() rl.Vector3 {
	if s.owner == nil {
		return rl.Vector3{}
	}
	return s.owner.Position()
}

// Plane is an infinite two-sided plane through the owner's position, facing
// along the owner's local up axis.
type Plane struct {
	owner *Body
}

func NewPlane() *Plane { return &Plane{} }

func (p *Plane) Kind() ShapeKind { return KindPlane }

func (p *Plane) bind(owner *Body) { p.owner = owner }

func (p *Plane) Normal() rl.Vector3 { return surfaceNormal(p.owner) }

func (p *Plane) Position() rl.Vector3 { return surfacePosition(p.owner) }

// Halfspace is the solid region below a plane; everything with a negative
// signed distance along Normal is inside.
type Halfspace struct {
	owner *Body
}

func NewHalfspace() *Halfspace { return &Halfspace{} }

func (h *Halfspace) Kind() ShapeKind { return KindHalfspace }

func (h *Halfspace) bind(owner *Body) { h.owner = owner }

func (h *Halfspace) Normal() rl.Vector3 { return surfaceNormal(h.owner) }

func (h *Halfspace) Position() rl.Vector3 { return surfacePosition(h.owner) }

func surfaceNormal(b *Body) rl.Vector3 {
	if b == nil || b.GetGameObject() == nil {
		return worldUp
	}
	return normalizeOr(b.GetGameObject().Up(), worldUp)
}

func surfacePosition(b *Body) rl.Vector3 {
	if b == nil {
		return rl.Vector3{}
	}
	return b.Position()
}
