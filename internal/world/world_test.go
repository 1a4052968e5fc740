package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rigid3d/internal/components"
	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const dropScene = `
name: Drop
physics:
  gravity: [0, -10, 0]
  fixedDelta: 0.02
  restitution:
    - {a: steel, b: rubber, value: 0.75}
objects:
  - name: Ground
    color: LightGray
    body:
      shape: halfspace
      static: true
  - name: Ball
    position: [0, 5, 0]
    color: Orange
    body:
      shape: sphere
      radius: 1
      drag: 0
      material: rubber
  - name: Crate
    position: [4, 3, 0]
    body:
      shape: aabb
      size: [2, 2, 2]
      mass: 3
      velocity: [1, 0, 0]
  - name: Marker
    position: [0, 10, 0]
`

func newTestWorld() *World {
	w := New()
	w.SetLogger(nil)
	return w
}

func TestParseScene(t *testing.T) {
	sf, err := ParseScene([]byte(dropScene))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if sf.Name != "Drop" {
		t.Errorf("Expected name Drop, got %q", sf.Name)
	}
	if len(sf.Objects) != 4 {
		t.Fatalf("Expected 4 objects, got %d", len(sf.Objects))
	}
	if sf.Objects[1].Body.Radius != 1 {
		t.Errorf("Expected radius 1, got %v", sf.Objects[1].Body.Radius)
	}
	if sf.Objects[3].Body != nil {
		t.Error("Marker should have no body")
	}
}

func TestParseSceneRejectsBadNames(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"bad shape", "objects:\n  - name: X\n    body: {shape: capsule}\n", "capsule"},
		{"bad material", "objects:\n  - name: X\n    body: {shape: sphere, material: jelly}\n", "jelly"},
		{"bad color", "objects:\n  - name: X\n    color: Chartreuse\n", "Chartreuse"},
		{"bad restitution pair", "physics:\n  restitution:\n    - {a: steel, b: glass, value: 1}\n", "glass"},
		{"negative delta", "physics:\n  fixedDelta: -1\n", "fixedDelta"},
		{"malformed", "objects: [", "parse scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.doc))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyScene(t *testing.T) {
	w := newTestWorld()
	sf, err := ParseScene([]byte(dropScene))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Apply(sf); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(w.Scene.GameObjects) != 4 {
		t.Errorf("Expected 4 objects, got %d", len(w.Scene.GameObjects))
	}
	if w.Physics.BodyCount() != 3 {
		t.Errorf("Expected 3 bodies, got %d", w.Physics.BodyCount())
	}
	if w.Settings.FixedDelta != 0.02 {
		t.Errorf("Expected fixed delta 0.02, got %v", w.Settings.FixedDelta)
	}
	if got := w.Physics.Materials.Lookup(physics.Rubber, physics.Steel); got != 0.75 {
		t.Errorf("Expected restitution override 0.75, got %v", got)
	}

	ball := engine.GetComponent[*physics.Body](w.Scene.FindByName("Ball"))
	if ball == nil {
		t.Fatal("Ball has no body")
	}
	if ball.Material != physics.Rubber || ball.Drag() != 0 {
		t.Errorf("Unexpected ball settings: material %v drag %v", ball.Material, ball.Drag())
	}

	crate := engine.GetComponent[*physics.Body](w.Scene.FindByName("Crate"))
	if crate.Mass() != 3 || crate.Velocity != (rl.Vector3{X: 1}) {
		t.Errorf("Unexpected crate: mass %v velocity %v", crate.Mass(), crate.Velocity)
	}
	box := crate.Shape().(*physics.AABB)
	if !box.RecalculateBounds() || box.Max != (rl.Vector3{X: 5, Y: 4, Z: 1}) {
		t.Errorf("Expected crate bounds from its mesh, got %v..%v", box.Min, box.Max)
	}

	ground := engine.GetComponent[*physics.Body](w.Scene.FindByName("Ground"))
	if !ground.IsStatic || ground.Shape().Kind() != physics.KindHalfspace {
		t.Error("Ground should be a static halfspace")
	}
}

func TestLoadedSceneSettles(t *testing.T) {
	w := newTestWorld()
	sf, _ := ParseScene([]byte(dropScene))
	if err := w.Apply(sf); err != nil {
		t.Fatal(err)
	}
	ball := engine.GetComponent[*physics.Body](w.Scene.FindByName("Ball"))

	for range 300 {
		w.Step()
	}

	if y := ball.Position().Y; y < 0.999 || y > 1.001 {
		t.Errorf("Expected ball resting on the ground, got y=%v", y)
	}
	if ball.Velocity != (rl.Vector3{}) {
		t.Errorf("Expected ball at rest, got %v", ball.Velocity)
	}
}

func TestLoadSceneFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drop.yaml")
	if err := os.WriteFile(path, []byte(dropScene), 0644); err != nil {
		t.Fatal(err)
	}

	w := newTestWorld()
	if err := w.LoadScene(path); err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if w.Name != "Drop" {
		t.Errorf("Expected scene name Drop, got %q", w.Name)
	}

	if err := w.LoadScene(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveSceneRoundTrip(t *testing.T) {
	w := newTestWorld()
	sf, _ := ParseScene([]byte(dropScene))
	if err := w.Apply(sf); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := w.SaveScene(path); err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	reloaded := newTestWorld()
	if err := reloaded.LoadScene(path); err != nil {
		t.Fatalf("Reloading saved scene failed: %v", err)
	}
	if reloaded.Physics.BodyCount() != w.Physics.BodyCount() {
		t.Errorf("Expected %d bodies after reload, got %d", w.Physics.BodyCount(), reloaded.Physics.BodyCount())
	}

	crate := engine.GetComponent[*physics.Body](reloaded.Scene.FindByName("Crate"))
	if crate == nil || crate.Mass() != 3 || crate.Shape().Kind() != physics.KindAABB {
		t.Errorf("Crate did not survive the round trip: %+v", crate)
	}
	if r := engine.GetComponent[*components.MeshRenderer](reloaded.Scene.FindByName("Ball")); r == nil || r.Color != rl.Orange {
		t.Error("Ball color did not survive the round trip")
	}
}

func TestSpawnAndDestroy(t *testing.T) {
	w := newTestWorld()
	var access engine.WorldAccess = w

	g := engine.NewGameObject("Ball")
	g.AddComponent(physics.NewBody(physics.NewSphere(1)))
	access.SpawnObject(g)

	if w.Scene.FindByUID(g.UID) != g {
		t.Error("Spawned object not in scene")
	}
	if w.Physics.BodyCount() != 1 {
		t.Errorf("Expected 1 body, got %d", w.Physics.BodyCount())
	}

	access.Destroy(g)
	access.Destroy(g)

	if !g.Destroyed() {
		t.Error("Expected object destroyed")
	}
	if w.Scene.FindByUID(g.UID) != nil {
		t.Error("Destroyed object still in scene")
	}
	if w.Physics.BodyCount() != 0 {
		t.Errorf("Expected empty registry, got %d", w.Physics.BodyCount())
	}

	plain := engine.NewGameObject("Marker")
	access.SpawnObject(plain)
	access.Destroy(plain)
	if !plain.Destroyed() || len(w.Scene.GameObjects) != 0 {
		t.Error("Expected bodiless object destroyed and removed")
	}
}

func TestLauncherThroughWorld(t *testing.T) {
	w := newTestWorld()
	launcher := components.NewLauncher(w)
	launcher.Origin = rl.Vector3{Y: 3}

	body := launcher.Launch()

	if w.Physics.BodyCount() != 1 || w.Bodies()[0] != body {
		t.Error("Launched body should be registered")
	}
	if len(w.Scene.FindByTag("projectile")) != 1 {
		t.Error("Launched object should be in the scene")
	}
}

func TestWorldRaycast(t *testing.T) {
	w := newTestWorld()
	g := engine.NewGameObject("Target")
	g.Transform.Position = rl.Vector3{Z: -10}
	g.AddComponent(physics.NewBody(physics.NewSphere(1)))
	w.SpawnObject(g)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 100)
	if !ok || hit.GameObject != g {
		t.Fatalf("Expected to hit the target, got %+v, %v", hit, ok)
	}
	if hit.Distance < 8.999 || hit.Distance > 9.001 {
		t.Errorf("Expected distance 9, got %v", hit.Distance)
	}

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100); ok {
		t.Error("Expected miss behind the origin")
	}
}

func TestClear(t *testing.T) {
	w := newTestWorld()
	sf, _ := ParseScene([]byte(dropScene))
	if err := w.Apply(sf); err != nil {
		t.Fatal(err)
	}

	w.Clear()

	if len(w.Scene.GameObjects) != 0 || w.Physics.BodyCount() != 0 {
		t.Errorf("Expected empty world, got %d objects and %d bodies", len(w.Scene.GameObjects), w.Physics.BodyCount())
	}
}

func TestFrustumContainsSphere(t *testing.T) {
	camera := rl.Camera3D{
		Position:   rl.Vector3{Z: 10},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f := NewFrustum(camera, 1)

	tests := []struct {
		name   string
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"in front", rl.Vector3{}, 1, true},
		{"behind camera", rl.Vector3{Z: 20}, 1, false},
		{"far to the side", rl.Vector3{X: 100}, 1, false},
		{"large enough to reach in", rl.Vector3{X: 100}, 200, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsSphere(tt.center, tt.radius); got != tt.want {
				t.Errorf("ContainsSphere(%v, %v) = %v, expected %v", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}

func TestBundledScenesLoad(t *testing.T) {
	paths, err := filepath.Glob("../../scenes/*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("Expected bundled scenes")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			w := newTestWorld()
			if err := w.LoadScene(path); err != nil {
				t.Fatalf("LoadScene failed: %v", err)
			}
			for range 200 {
				w.Step()
			}
			for _, b := range w.Bodies() {
				if b.IsStatic {
					continue
				}
				if y := b.Position().Y; y < -1 {
					t.Errorf("%s fell through the ground: y=%v", b.GetGameObject().Name, y)
				}
			}
		})
	}
}
