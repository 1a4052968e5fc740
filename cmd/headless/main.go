// Command headless steps a scene file without a window and reports where
// every body ends up.
package main

import (
	"flag"

	"rigid3d/internal/physics"
	"rigid3d/internal/world"

	"github.com/charmbracelet/log"
)

func main() {
	scenePath := flag.String("scene", "scenes/sandbox.yaml", "scene file to simulate")
	steps := flag.Int("steps", 500, "number of fixed steps")
	every := flag.Int("every", 0, "log body state every N steps (0 logs only the end)")
	out := flag.String("out", "", "write the final state as a scene file")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger := log.Default()
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("bad log level", "err", err)
	}
	logger.SetLevel(level)

	w := world.New()
	w.SetLogger(logger)
	if err := w.LoadScene(*scenePath); err != nil {
		logger.Fatal("load failed", "err", err)
	}

	contacts := 0
	w.Physics.OnContact.AddListener(func(physics.Contact) {
		contacts++
	})

	logger.Info("simulating", "scene", w.Name, "bodies", w.Physics.BodyCount(),
		"steps", *steps, "dt", w.Settings.FixedDelta)

	for i := 1; i <= *steps; i++ {
		w.Step()
		if *every > 0 && i%*every == 0 {
			report(logger, w, i)
		}
	}
	report(logger, w, *steps)
	logger.Info("done", "contacts", contacts)

	if *out != "" {
		if err := w.SaveScene(*out); err != nil {
			logger.Fatal("save failed", "err", err)
		}
		logger.Info("saved", "path", *out)
	}
}

func report(logger *log.Logger, w *world.World, step int) {
	for _, b := range w.Bodies() {
		if b.IsStatic {
			continue
		}
		p := b.Position()
		logger.Info("body",
			"step", step,
			"name", b.GetGameObject().Name,
			"shape", b.Shape().Kind(),
			"pos", [3]float32{p.X, p.Y, p.Z},
			"vel", [3]float32{b.Velocity.X, b.Velocity.Y, b.Velocity.Z})
	}
}
