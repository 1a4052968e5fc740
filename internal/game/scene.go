package game

import "rigid3d/internal/world"

func f32(v float32) *float32 { return &v }

// DefaultScene is loaded when the sandbox starts without a scene file: a
// ground plane (boxes fall through halfspaces), a tilted ramp, a few balls of different materials and
// a stack of crates.
func DefaultScene() *world.SceneFile {
	gravity := [3]float32{0, -10, 0}
	crateSize := [3]float32{1.5, 1.5, 1.5}
	rampSize := [3]float32{8, 0, 8}
	groundSize := [3]float32{40, 0, 40}

	return &world.SceneFile{
		Name: "Sandbox",
		Physics: world.PhysicsDef{
			Gravity:    &gravity,
			FixedDelta: world.DefaultFixedDelta,
		},
		Objects: []world.ObjectDef{
			{
				Name:  "Ground",
				Tags:  []string{"static"},
				Color: "LightGray",
				Body:  &world.BodyDef{Shape: "plane", Static: true, Size: &groundSize, Material: "stone"},
			},
			{
				Name:     "Ramp",
				Tags:     []string{"static"},
				Position: [3]float32{-8, 2, 0},
				Rotation: [3]float32{0, 0, -20},
				Color:    "Beige",
				Body:     &world.BodyDef{Shape: "plane", Static: true, Size: &rampSize, Material: "wood"},
			},
			{
				Name:     "SteelBall",
				Position: [3]float32{-8, 8, 0},
				Color:    "Gray",
				Body:     &world.BodyDef{Shape: "sphere", Radius: 0.6, Mass: f32(4), Material: "steel", Restitution: f32(0.9)},
			},
			{
				Name:     "RubberBall",
				Position: [3]float32{0, 10, 0},
				Color:    "Red",
				Body:     &world.BodyDef{Shape: "sphere", Radius: 0.8, Material: "rubber", Restitution: f32(0.95), Drag: f32(0.02)},
			},
			{
				Name:     "ClothBall",
				Position: [3]float32{0.5, 14, 0.3},
				Color:    "Purple",
				Body:     &world.BodyDef{Shape: "sphere", Radius: 0.7, Mass: f32(0.5), Material: "cloth", Restitution: f32(0.2)},
			},
			{
				Name:     "CrateBase",
				Position: [3]float32{6, 0.75, 0},
				Color:    "Brown",
				Body:     &world.BodyDef{Shape: "aabb", Size: &crateSize, Static: true, Material: "wood"},
			},
			{
				Name:     "CrateTop",
				Position: [3]float32{6.3, 5, 0},
				Color:    "Orange",
				Body:     &world.BodyDef{Shape: "aabb", Size: &crateSize, Mass: f32(2), Material: "wood", Restitution: f32(0.3)},
			},
		},
	}
}
