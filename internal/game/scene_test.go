package game

import (
	"io"
	"testing"

	"rigid3d/internal/engine"
	"rigid3d/internal/physics"
	"rigid3d/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDefaultSceneIsValid(t *testing.T) {
	sf := DefaultScene()
	if err := sf.Validate(); err != nil {
		t.Fatalf("Default scene invalid: %v", err)
	}

	w := world.New()
	w.SetLogger(nil)
	if err := w.Apply(sf); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if w.Physics.BodyCount() != len(sf.Objects) {
		t.Errorf("Expected %d bodies, got %d", len(sf.Objects), w.Physics.BodyCount())
	}
}

func TestDefaultSceneStaysFinite(t *testing.T) {
	w := world.New()
	w.SetLogger(nil)
	if err := w.Apply(DefaultScene()); err != nil {
		t.Fatal(err)
	}

	for range 500 {
		w.Step()
	}

	for _, b := range w.Bodies() {
		p := b.Position()
		if p != p || b.Velocity != b.Velocity {
			t.Errorf("%s has non-finite state: %v %v", b.GetGameObject().Name, p, b.Velocity)
		}
	}

	ground := engine.GetComponent[*physics.Body](w.Scene.FindByName("Ground"))
	if ground.Position() != (rl.Vector3{}) {
		t.Errorf("Static ground moved to %v", ground.Position())
	}
}

func TestGameLoadWithoutWindow(t *testing.T) {
	g := New("", log.New(io.Discard))
	if err := g.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if g.Launcher == nil || g.World.Scene.FindByName("Launcher") == nil {
		t.Error("Expected launcher rig in the scene")
	}
	before := g.World.Physics.BodyCount()

	g.SpawnSphere()
	g.SpawnBox()
	if got := g.World.Physics.BodyCount(); got != before+2 {
		t.Errorf("Expected %d bodies after spawning, got %d", before+2, got)
	}

	g.StepOnce()
	if g.Clock.Step != world.DefaultFixedDelta {
		t.Errorf("Expected clock step %v, got %v", world.DefaultFixedDelta, g.Clock.Step)
	}
}

func TestCullStraysRemovesFallenProjectiles(t *testing.T) {
	g := New("", log.New(io.Discard))
	if err := g.Load(); err != nil {
		t.Fatal(err)
	}

	shot := g.Launcher.Launch()
	shot.SetPosition(rl.Vector3{Y: killHeight - 1})
	g.cullStrays()

	if !shot.GetGameObject().Destroyed() {
		t.Error("Expected fallen projectile destroyed")
	}
}
