package components

import (
	"fmt"

	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Launcher spawns sphere bodies into the world along an aim ray. The host
// updates Origin and Direction each frame; the right mouse button fires.
type Launcher struct {
	engine.BaseComponent
	World     engine.WorldAccess
	Origin    rl.Vector3
	Direction rl.Vector3
	Speed     float32
	Radius    float32
	Material  physics.SurfaceMaterial
	Color     rl.Color
	Cooldown  float64

	lastShotTime float64
	shotCounter  int
}

func NewLauncher(world engine.WorldAccess) *Launcher {
	return &Launcher{
		World:     world,
		Direction: rl.Vector3{Z: -1},
		Speed:     20,
		Radius:    0.5,
		Material:  physics.Rubber,
		Color:     rl.Orange,
		Cooldown:  0.15,
	}
}

func (l *Launcher) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) && rl.GetTime()-l.lastShotTime >= l.Cooldown {
		l.Launch()
		l.lastShotTime = rl.GetTime()
	}
}

// Launch spawns one sphere at Origin moving along Direction at Speed and
// returns its body.
func (l *Launcher) Launch() *physics.Body {
	l.shotCounter++

	dir := rl.Vector3Normalize(l.Direction)
	if rl.Vector3LengthSqr(dir) == 0 {
		dir = rl.Vector3{Z: -1}
	}

	shot := engine.NewGameObject(fmt.Sprintf("Shot_%d", l.shotCounter))
	shot.Tags = []string{"projectile"}
	shot.Transform.Position = l.Origin

	shot.AddComponent(NewMeshRenderer(MeshSphere, l.Color, rl.Vector3{X: l.Radius}))

	body := physics.NewBody(physics.NewSphere(l.Radius))
	body.Material = l.Material
	body.SetRestitution(0.6)
	body.Velocity = rl.Vector3Scale(dir, l.Speed)
	shot.AddComponent(body)

	l.World.SpawnObject(shot)
	return body
}

// Shots returns how many spheres have been launched.
func (l *Launcher) Shots() int {
	return l.shotCounter
}
