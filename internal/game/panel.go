package game

import (
	"fmt"

	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var panelBounds = rl.Rectangle{X: 10, Y: 10, Width: 240, Height: 420}

var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextBold  = rl.NewColor(255, 255, 255, 255)
)

func initPanelStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextBold))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextBold))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func mouseInPanel() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), panelBounds)
}

func (g *Game) drawPanel() {
	gui.Panel(panelBounds, "Simulation")

	x := panelBounds.X + 10
	y := panelBounds.Y + 34
	w := panelBounds.Width - 20
	row := func(h float32) rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: w, Height: h}
		y += h + 6
		return r
	}

	g.Paused = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Paused (P)", g.Paused)
	y += 24

	if gui.Button(row(24), "Step (N)") && g.Paused {
		g.StepOnce()
	}
	if gui.Button(row(24), "Spawn sphere") {
		g.SpawnSphere()
	}
	if gui.Button(row(24), "Spawn box") {
		g.SpawnBox()
	}
	if gui.Button(row(24), "Reset (R)") {
		g.Reset()
		return
	}

	gravity := g.World.Physics.Gravity
	label := row(18)
	gui.Label(label, fmt.Sprintf("Gravity Y: %.1f", gravity.Y))
	gravity.Y = gui.Slider(row(18), "", "", gravity.Y, -30, 0)
	g.World.Physics.Gravity = gravity

	g.Renderer.ShowContacts = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Contact lines", g.Renderer.ShowContacts)
	y += 28

	gui.Label(row(18), fmt.Sprintf("Bodies: %d", g.World.Physics.BodyCount()))
	gui.Label(row(18), fmt.Sprintf("Contacts: %d", g.frameContacts))
	gui.Label(row(18), fmt.Sprintf("Launched: %d", g.Launcher.Shots()))

	g.drawSelectionInfo(x, y, w)
}

func (g *Game) drawSelectionInfo(x, y, w float32) {
	if g.Selected == nil {
		return
	}
	body := engine.GetComponent[*physics.Body](g.Selected)
	if body == nil {
		return
	}

	lines := []string{
		g.Selected.Name,
		fmt.Sprintf("%s, %s", body.Shape().Kind(), body.Material),
		fmt.Sprintf("mass %.2f  e %.2f", body.Mass(), body.Restitution()),
		fmt.Sprintf("v (%.1f, %.1f, %.1f)", body.Velocity.X, body.Velocity.Y, body.Velocity.Z),
	}
	if body.IsStatic {
		lines[2] = "static"
	}
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: 18}, line)
		y += 20
	}
}
