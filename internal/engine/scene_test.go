package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	ball := NewGameObject("Ball")

	scene.AddGameObject(ball)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != ball {
		t.Fatalf("Expected scene to hold the ball, got %v", scene.GameObjects)
	}
	if ball.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if scene.FindByUID(ball.UID) != ball {
		t.Error("FindByUID failed for added object")
	}
	if scene.FindByUID(0) != nil {
		t.Error("FindByUID should return nil for the reserved zero UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	ball := NewGameObject("Ball")
	crate := NewGameObject("Crate")
	scene.AddGameObject(ball)
	scene.AddGameObject(crate)

	scene.RemoveGameObject(ball)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != crate {
		t.Fatalf("Expected only the crate to remain, got %v", scene.GameObjects)
	}
	if scene.FindByUID(ball.UID) != nil {
		t.Error("Removed object still in UID map")
	}
	if ball.Scene != nil {
		t.Error("Removed object should have no scene")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	rig := NewGameObject("Rig")
	wheel := NewGameObject("Wheel")
	scene.AddGameObject(rig)
	scene.AddGameObject(wheel)
	rig.AddChild(wheel)

	scene.RemoveGameObject(rig)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(wheel.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneFind(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("BallA")
	b := NewGameObject("BallB")
	floor := NewGameObject("Floor")
	a.Tags = []string{"dynamic", "sphere"}
	b.Tags = []string{"dynamic"}
	floor.Tags = []string{"static"}
	for _, g := range []*GameObject{a, b, floor} {
		scene.AddGameObject(g)
	}

	if scene.FindByName("Floor") != floor {
		t.Error("FindByName failed")
	}
	if scene.FindByName("Missing") != nil {
		t.Error("FindByName should return nil for unknown names")
	}
	if n := len(scene.FindByTag("dynamic")); n != 2 {
		t.Errorf("Expected 2 dynamic objects, got %d", n)
	}
	if n := len(scene.FindByTag("nothing")); n != 0 {
		t.Errorf("Expected no matches, got %d", n)
	}
}

func TestSceneLazyUIDMap(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	scene.AddGameObject(NewGameObject("Ball"))

	if scene.uidMap == nil {
		t.Error("uidMap should be created on first AddGameObject")
	}
}

type countingComponent struct {
	BaseComponent
	updates int
	onTick  func()
}

func (c *countingComponent) Update(float32) {
	c.updates++
	if c.onTick != nil {
		c.onTick()
	}
}

func TestSceneUpdateToleratesDestroyDuringTick(t *testing.T) {
	scene := NewScene("Test")
	first := NewGameObject("First")
	second := NewGameObject("Second")
	firstCounter := &countingComponent{}
	secondCounter := &countingComponent{}
	first.AddComponent(firstCounter)
	second.AddComponent(secondCounter)
	scene.AddGameObject(first)
	scene.AddGameObject(second)

	firstCounter.onTick = func() { second.Destroy() }

	scene.Update(0.016)

	if firstCounter.updates != 1 {
		t.Errorf("Expected first updated once, got %d", firstCounter.updates)
	}
	if secondCounter.updates != 0 {
		t.Errorf("Destroyed object should not update, got %d", secondCounter.updates)
	}
	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected destroyed object removed, got %d objects", len(scene.GameObjects))
	}
}
