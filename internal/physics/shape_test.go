package physics

import "testing"

func TestShapeKinds(t *testing.T) {
	tests := []struct {
		shape Shape
		kind  ShapeKind
		name  string
	}{
		{NewSphere(1), KindSphere, "sphere"},
		{NewPlane(), KindPlane, "plane"},
		{NewHalfspace(), KindHalfspace, "halfspace"},
		{NewAABB(BoxBounds(vec(1, 1, 1))), KindAABB, "aabb"},
	}
	for _, tt := range tests {
		if tt.shape.Kind() != tt.kind {
			t.Errorf("Expected kind %v, got %v", tt.kind, tt.shape.Kind())
		}
		if tt.kind.String() != tt.name {
			t.Errorf("Expected name %q, got %q", tt.name, tt.kind.String())
		}
		parsed, err := ParseShapeKind(tt.name)
		if err != nil || parsed != tt.kind {
			t.Errorf("ParseShapeKind(%q) = %v, %v", tt.name, parsed, err)
		}
	}

	if _, err := ParseShapeKind("capsule"); err == nil {
		t.Error("Expected error for unknown shape")
	}
}

func TestSphereRadiusClamped(t *testing.T) {
	s := NewSphere(-1)
	if s.Radius() != MinRadius {
		t.Errorf("Expected radius %v, got %v", MinRadius, s.Radius())
	}
	s.SetRadius(2)
	if s.Radius() != 2 {
		t.Errorf("Expected radius 2, got %v", s.Radius())
	}
}

func TestPlaneNormalFollowsRotation(t *testing.T) {
	b := newBody("Floor", NewPlane(), vec(0, 3, 0))
	plane := b.Shape().(*Plane)

	assertVec(t, "default normal", plane.Normal(), vec(0, 1, 0))
	assertVec(t, "position", plane.Position(), vec(0, 3, 0))

	b.GetGameObject().Transform.Rotation = vec(0, 0, 90)
	assertVec(t, "rotated normal", plane.Normal(), vec(-1, 0, 0))
}

func TestUnboundSurfaceDefaultsUp(t *testing.T) {
	assertVec(t, "halfspace normal", NewHalfspace().Normal(), vec(0, 1, 0))
}

func TestAABBRecalculateBounds(t *testing.T) {
	b := newBody("Crate", NewAABB(BoxBounds(vec(2, 4, 6))), vec(1, 1, 1))
	b.GetGameObject().Transform.Scale = vec(1, 0.5, 2)
	box := b.Shape().(*AABB)

	if box.Valid() {
		t.Error("AABB should be invalid before the first recompute")
	}
	if !box.RecalculateBounds() {
		t.Fatal("RecalculateBounds failed")
	}

	assertVec(t, "min", box.Min, vec(0, 0, -5))
	assertVec(t, "max", box.Max, vec(2, 2, 7))
	assertVec(t, "center", box.Center(), vec(1, 1, 1))
	assertVec(t, "size", box.Size(), vec(2, 2, 12))
}

func TestAABBNegativeScaleKeepsMinBelowMax(t *testing.T) {
	b := newBody("Mirrored", NewAABB(BoxBounds(vec(2, 2, 2))), vec(0, 0, 0))
	b.GetGameObject().Transform.Scale = vec(-1, 1, 1)
	box := b.Shape().(*AABB)
	box.RecalculateBounds()

	if box.Min.X > box.Max.X {
		t.Errorf("Expected min.X <= max.X, got %v > %v", box.Min.X, box.Max.X)
	}
}

func TestAABBMissingSourceKeepsBounds(t *testing.T) {
	box := NewAABBFromCenter(vec(0, 0, 0), vec(2, 2, 2))
	newBody("Wall", box, vec(10, 0, 0))

	if !box.RecalculateBounds() {
		t.Fatal("Fixed bounds should stay valid")
	}
	assertVec(t, "min", box.Min, vec(-1, -1, -1))
	assertVec(t, "max", box.Max, vec(1, 1, 1))

	empty := NewAABB(nil)
	newBody("Empty", empty, vec(0, 0, 0))
	if empty.RecalculateBounds() {
		t.Error("AABB without a source should never become valid")
	}
}

func TestAABBCornersAndClosestPoint(t *testing.T) {
	box := NewAABBFromCenter(vec(0, 0, 0), vec(2, 2, 2))

	corners := box.Corners()
	seen := map[[3]float32]bool{}
	for _, c := range corners {
		seen[[3]float32{c.X, c.Y, c.Z}] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct corners, got %d", len(seen))
	}

	assertVec(t, "outside", box.ClosestPoint(vec(5, 0.5, -3)), vec(1, 0.5, -1))
	assertVec(t, "inside", box.ClosestPoint(vec(0.2, 0.3, 0.4)), vec(0.2, 0.3, 0.4))
}
