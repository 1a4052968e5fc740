package world

import (
	"io"

	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultFixedDelta is the simulation timestep used when a scene does not
// set one.
const DefaultFixedDelta = 0.02

// Settings are the scene-level simulation parameters.
type Settings struct {
	FixedDelta float32
}

// World ties the scene graph to the physics world and is what components see
// through engine.WorldAccess.
type World struct {
	Name     string
	Scene    *engine.Scene
	Physics  *physics.World
	Settings Settings

	logger *log.Logger
}

func New() *World {
	return &World{
		Name:     "Main",
		Scene:    engine.NewScene("Main"),
		Physics:  physics.NewWorld(),
		Settings: Settings{FixedDelta: DefaultFixedDelta},
		logger:   log.Default().WithPrefix("world"),
	}
}

// SetLogger replaces the scene logger and derives the physics logger from
// it. nil discards output.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	w.logger = l.WithPrefix("world")
	w.Physics.SetLogger(l.WithPrefix("physics"))
}

// SpawnObject adds g to the scene, starts it and registers its body.
func (w *World) SpawnObject(g *engine.GameObject) {
	if g == nil {
		return
	}
	w.Scene.AddGameObject(g)
	g.Start()
	if body := engine.GetComponent[*physics.Body](g); body != nil {
		w.Physics.AddBody(body)
	}
	w.logger.Debug("spawned", "name", g.Name, "uid", g.UID)
}

// Destroy removes g's body from the simulation and destroys g. Destroying an
// object twice is a no-op.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || g.Destroyed() {
		return
	}
	if body := engine.GetComponent[*physics.Body](g); body != nil {
		w.Physics.RemoveBody(body)
	}
	// RemoveBody only destroys registered bodies.
	g.Destroy()
	w.logger.Debug("destroyed", "name", g.Name, "uid", g.UID)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	hit, ok := w.Physics.Raycast(origin, direction, maxDistance)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: hit.Body.GetGameObject(),
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

// Update runs component logic for one frame.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Step advances the simulation by one fixed timestep.
func (w *World) Step() {
	w.Physics.Step(w.Settings.FixedDelta)
}

// Bodies lists every registered body in registry order.
func (w *World) Bodies() []*physics.Body {
	return w.Physics.Bodies()
}

// Clear destroys every object in the scene.
func (w *World) Clear() {
	objects := make([]*engine.GameObject, len(w.Scene.GameObjects))
	copy(objects, w.Scene.GameObjects)
	for _, g := range objects {
		w.Destroy(g)
	}
}
