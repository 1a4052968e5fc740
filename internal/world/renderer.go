package world

import (
	"rigid3d/internal/components"
	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene's meshes, skipping those outside the camera.
type Renderer struct {
	ShowContacts bool
	Culled       int // objects skipped in the last Draw
}

func NewRenderer() *Renderer {
	return &Renderer{ShowContacts: true}
}

// Draw must be called between rl.BeginMode3D and rl.EndMode3D.
func (r *Renderer) Draw(camera rl.Camera3D, aspect float32, w *World) {
	frustum := NewFrustum(camera, aspect)
	r.Culled = 0

	for _, g := range w.Scene.GameObjects {
		mesh := engine.GetComponent[*components.MeshRenderer](g)
		if mesh == nil {
			continue
		}
		if radius, ok := boundingRadius(g, mesh); ok && !frustum.ContainsSphere(g.WorldPosition(), radius) {
			r.Culled++
			continue
		}
		mesh.Draw()
	}

	if r.ShowContacts {
		drawContacts(w.Physics.Contacts())
	}
}

// boundingRadius returns a sphere enclosing the mesh. Planes are unbounded.
func boundingRadius(g *engine.GameObject, mesh *components.MeshRenderer) (float32, bool) {
	switch mesh.MeshType {
	case components.MeshSphere:
		return mesh.Size.X, true
	case components.MeshCube:
		size := rl.Vector3Multiply(mesh.Size, g.WorldScale())
		return rl.Vector3Length(size) / 2, true
	default:
		return 0, false
	}
}

func drawContacts(contacts []physics.Contact) {
	for _, c := range contacts {
		if !c.A.Valid() || !c.B.Valid() {
			continue
		}
		rl.DrawLine3D(c.A.Position(), c.B.Position(), rl.Yellow)
	}
}
