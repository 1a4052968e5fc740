package game

import (
	"fmt"
	"time"

	"rigid3d/internal/camera"
	"rigid3d/internal/components"
	"rigid3d/internal/engine"
	"rigid3d/internal/physics"
	"rigid3d/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// killHeight is where stray projectiles are cleaned up.
const killHeight = -50

type Game struct {
	World     *world.World
	Camera    *camera.OrbitCamera
	Renderer  *world.Renderer
	Clock     *FixedClock
	Launcher  *components.Launcher
	Selected  *engine.GameObject
	Paused    bool
	DebugMode bool
	ScenePath string

	spawnCounter  int
	frameContacts int
	stepMs        float64
	root          *log.Logger
	logger        *log.Logger
}

func New(scenePath string, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		Camera:    camera.New(rl.Vector3{Y: 2}, 28),
		Renderer:  world.NewRenderer(),
		ScenePath: scenePath,
		root:      logger,
		logger:    logger.WithPrefix("sandbox"),
	}
}

// Load builds a fresh world from ScenePath, or the default scene when it is
// empty.
func (g *Game) Load() error {
	w := world.New()
	w.SetLogger(g.root)

	if g.ScenePath != "" {
		if err := w.LoadScene(g.ScenePath); err != nil {
			return err
		}
	} else if err := w.Apply(DefaultScene()); err != nil {
		return fmt.Errorf("default scene: %w", err)
	}

	w.Physics.OnContact.AddListener(func(physics.Contact) {
		g.frameContacts++
	})

	rig := engine.NewGameObject("Launcher")
	g.Launcher = components.NewLauncher(w)
	rig.AddComponent(g.Launcher)
	w.SpawnObject(rig)

	g.World = w
	g.Clock = NewFixedClock(w.Settings.FixedDelta)
	g.Selected = nil
	return nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "rigid3d sandbox")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initPanelStyle()

	if err := g.Load(); err != nil {
		return err
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	g.handleKeys()
	if !mouseInPanel() {
		g.Camera.Update(deltaTime)
	}

	cam := g.Camera.GetRaylibCamera()
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)
	g.Launcher.Origin = rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, 2))
	g.Launcher.Direction = ray.Direction

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !mouseInPanel() {
		g.pick(ray)
	}

	g.World.Update(deltaTime)

	if g.Paused {
		return
	}
	steps := g.Clock.Advance(deltaTime)
	if steps == 0 {
		return
	}
	g.frameContacts = 0
	start := time.Now()
	for range steps {
		g.World.Step()
	}
	g.stepMs = float64(time.Since(start).Microseconds()) / 1000.0
	g.cullStrays()
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyP) {
		g.Paused = !g.Paused
	}
	if rl.IsKeyPressed(rl.KeyN) && g.Paused {
		g.StepOnce()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset()
	}
	if rl.IsKeyPressed(rl.KeyDelete) && g.Selected != nil {
		g.World.Destroy(g.Selected)
		g.Selected = nil
	}
}

// StepOnce advances a single fixed step regardless of the clock.
func (g *Game) StepOnce() {
	g.frameContacts = 0
	g.World.Step()
}

func (g *Game) Reset() {
	if err := g.Load(); err != nil {
		g.logger.Error("reload failed", "err", err)
		return
	}
	g.logger.Info("scene reset")
}

func (g *Game) pick(ray rl.Ray) {
	hit, ok := g.World.Raycast(ray.Position, ray.Direction, 1000)
	if !ok {
		g.Selected = nil
		return
	}
	g.Selected = hit.GameObject
	g.logger.Debug("selected", "name", hit.GameObject.Name, "distance", hit.Distance)
}

// cullStrays destroys projectiles that fell out of the world.
func (g *Game) cullStrays() {
	for _, obj := range g.World.Scene.FindByTag("projectile") {
		if obj.Transform.Position.Y < killHeight {
			g.World.Destroy(obj)
		}
	}
}

// SpawnSphere drops a ball above the camera target.
func (g *Game) SpawnSphere() {
	g.spawnCounter++
	obj, err := world.BuildObject(world.ObjectDef{
		Name:     fmt.Sprintf("Ball_%d", g.spawnCounter),
		Position: dropPoint(g.Camera.Target, g.spawnCounter),
		Color:    "SkyBlue",
		Body:     &world.BodyDef{Shape: "sphere", Radius: 0.5, Material: "rubber"},
	})
	if err != nil {
		g.logger.Error("spawn failed", "err", err)
		return
	}
	g.World.SpawnObject(obj)
}

// SpawnBox drops a crate above the camera target.
func (g *Game) SpawnBox() {
	g.spawnCounter++
	size := [3]float32{1, 1, 1}
	obj, err := world.BuildObject(world.ObjectDef{
		Name:     fmt.Sprintf("Box_%d", g.spawnCounter),
		Position: dropPoint(g.Camera.Target, g.spawnCounter),
		Color:    "Gold",
		Body:     &world.BodyDef{Shape: "aabb", Size: &size, Material: "wood"},
	})
	if err != nil {
		g.logger.Error("spawn failed", "err", err)
		return
	}
	g.World.SpawnObject(obj)
}

// dropPoint spreads successive spawns around target so they don't stack
// exactly.
func dropPoint(target rl.Vector3, n int) [3]float32 {
	offset := float32(n%5-2) * 0.3
	return [3]float32{target.X + offset, target.Y + 10, target.Z - offset}
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam)
	rl.DrawGrid(40, 1)
	g.Renderer.Draw(cam, aspect, g.World)
	if g.Selected != nil {
		drawSelection(g.Selected)
	}
	rl.EndMode3D()

	g.drawPanel()
	g.drawHUD()
	rl.EndDrawing()
}

func drawSelection(obj *engine.GameObject) {
	body := engine.GetComponent[*physics.Body](obj)
	if body == nil {
		return
	}
	switch s := body.Shape().(type) {
	case *physics.Sphere:
		rl.DrawSphereWires(s.Center(), s.Radius()*1.05, 8, 12, rl.Yellow)
	case *physics.AABB:
		if s.RecalculateBounds() {
			rl.DrawBoundingBox(rl.NewBoundingBox(s.Min, s.Max), rl.Yellow)
		}
	case *physics.Plane:
		rl.DrawLine3D(s.Position(), rl.Vector3Add(s.Position(), rl.Vector3Scale(s.Normal(), 2)), rl.Yellow)
	case *physics.Halfspace:
		rl.DrawLine3D(s.Position(), rl.Vector3Add(s.Position(), rl.Vector3Scale(s.Normal(), 2)), rl.Yellow)
	}
}

func (g *Game) drawHUD() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawFPS(screenW-100, 10)
	rl.DrawText("MMB orbit, Shift+MMB pan, wheel zoom, LMB select, RMB launch", 10, int32(rl.GetScreenHeight())-30, 18, rl.Gray)

	if g.DebugMode {
		rl.DrawText(fmt.Sprintf("Step: %.2f ms", g.stepMs), screenW-220, 40, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Culled: %d", g.Renderer.Culled), screenW-220, 60, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Alpha: %.2f", g.Clock.Alpha()), screenW-220, 80, 16, rl.Green)
	}
}
