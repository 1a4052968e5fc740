package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"rigid3d/internal/game"

	"github.com/charmbracelet/log"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to load (built-in scene when empty)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger := log.Default()
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("bad log level", "err", err)
	}
	logger.SetLevel(level)

	if *scenePath != "" {
		abs, err := filepath.Abs(*scenePath)
		if err != nil {
			logger.Fatal("bad scene path", "err", err)
		}
		*scenePath = abs
	}

	// Deployed builds look for assets next to the executable. "go run"
	// puts the binary in a go-build temp directory, so leave it alone.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	g := game.New(*scenePath, logger)
	if err := g.Run(); err != nil {
		logger.Fatal("sandbox failed", "err", err)
	}
}
