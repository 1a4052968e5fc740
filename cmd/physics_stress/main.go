// Stress test timing World.Step for growing numbers of spheres resting in a
// pile on the ground.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	iterations := flag.Int("iterations", 100, "steps timed per object count")
	flag.Parse()

	testCounts := []int{50, 100, 250, 500, 1000, 2000}
	for _, count := range testCounts {
		runPile(count, *iterations)
	}
}

func runPile(count, iterations int) {
	w := physics.NewWorld()
	w.SetLogger(log.New(io.Discard))

	ground := engine.NewGameObject("Ground")
	groundBody := physics.NewBody(physics.NewHalfspace())
	groundBody.IsStatic = true
	ground.AddComponent(groundBody)
	w.AddBody(groundBody)

	// Spawn in a box whose footprint grows with count to keep density
	// reasonable.
	rng := rand.New(rand.NewPCG(42, 42))
	spawnSize := float32(20.0) + float32(count)/50.0

	for i := range count {
		obj := engine.NewGameObject(fmt.Sprintf("Sphere_%d", i))
		obj.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 1 + rng.Float32()*spawnSize,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		body := physics.NewBody(physics.NewSphere(0.5 + rng.Float32()*0.5))
		body.Velocity = rl.Vector3{X: rng.Float32()*4 - 2, Z: rng.Float32()*4 - 2}
		obj.AddComponent(body)
		w.AddBody(body)
	}

	// Warm up
	for range 10 {
		w.Step(0.02)
	}

	contacts := 0
	start := time.Now()
	for range iterations {
		w.Step(0.02)
		contacts += len(w.Contacts())
	}
	elapsed := time.Since(start) / time.Duration(iterations)

	fmt.Printf("%5d bodies: %10v per step | %6.1f contacts/step\n",
		count, elapsed.Round(time.Microsecond), float64(contacts)/float64(iterations))
}
