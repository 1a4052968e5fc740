package components

import (
	"fmt"
	"strings"

	"rigid3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	if name, ok := meshNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MeshType(%d)", int(m))
}

func ParseMeshType(s string) (MeshType, error) {
	for m, name := range meshNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mesh %q", s)
}

// HighlightColor replaces a renderer's color for the frame its body collided.
var HighlightColor = rl.Red

// MeshRenderer draws a primitive at the owner's world position. Size is the
// full box extent for cubes, X is the radius for spheres, and X/Z span a
// plane.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Wireframe bool

	highlighted bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// SetHighlighted is called by the physics world each step.
func (m *MeshRenderer) SetHighlighted(on bool) {
	m.highlighted = on
}

func (m *MeshRenderer) Highlighted() bool {
	return m.highlighted
}

// DrawColor is the color used for the current frame.
func (m *MeshRenderer) DrawColor() rl.Color {
	if m.highlighted {
		return HighlightColor
	}
	return m.Color
}

// LocalBounds lets an AABB body size itself from the rendered mesh.
func (m *MeshRenderer) LocalBounds() rl.BoundingBox {
	var half rl.Vector3
	switch m.MeshType {
	case MeshCube:
		half = rl.Vector3Scale(m.Size, 0.5)
	case MeshSphere:
		half = rl.Vector3{X: m.Size.X, Y: m.Size.X, Z: m.Size.X}
	case MeshPlane:
		half = rl.Vector3{X: m.Size.X / 2, Z: m.Size.Z / 2}
	}
	return rl.NewBoundingBox(rl.Vector3Negate(half), half)
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	color := m.DrawColor()

	switch m.MeshType {
	case MeshCube:
		size := rl.Vector3Multiply(m.Size, scale)
		rl.DrawCubeV(pos, size, color)
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.4))
	case MeshSphere:
		if m.Wireframe {
			rl.DrawSphereWires(pos, m.Size.X, 8, 12, color)
			return
		}
		rl.DrawSphere(pos, m.Size.X, color)
	case MeshPlane:
		rot := g.WorldRotation()
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(rot.X, 1, 0, 0)
		rl.Rotatef(rot.Y, 0, 1, 0)
		rl.Rotatef(rot.Z, 0, 0, 1)
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: m.Size.X * scale.X, Y: m.Size.Z * scale.Z}, color)
		rl.PopMatrix()
	}
}
