package world

import (
	"fmt"
	"os"

	"rigid3d/internal/components"
	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name,omitempty"`
	Physics PhysicsDef  `yaml:"physics"`
	Objects []ObjectDef `yaml:"objects"`
}

type PhysicsDef struct {
	Gravity     *[3]float32      `yaml:"gravity,omitempty"`
	FixedDelta  float32          `yaml:"fixedDelta,omitempty"`
	Restitution []RestitutionDef `yaml:"restitution,omitempty"`
}

// RestitutionDef overrides one entry of the material table.
type RestitutionDef struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Value float32 `yaml:"value"`
}

type ObjectDef struct {
	Name     string     `yaml:"name"`
	Tags     []string   `yaml:"tags,omitempty"`
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation,omitempty"`
	Scale    [3]float32 `yaml:"scale,omitempty"`
	Color    string     `yaml:"color,omitempty"`
	Body     *BodyDef   `yaml:"body,omitempty"`
}

// BodyDef describes a physics body. Unset optional fields keep the body
// defaults.
type BodyDef struct {
	Shape        string      `yaml:"shape"`
	Radius       float32     `yaml:"radius,omitempty"`
	Size         *[3]float32 `yaml:"size,omitempty"`
	Mass         *float32    `yaml:"mass,omitempty"`
	Drag         *float32    `yaml:"drag,omitempty"`
	GravityScale *float32    `yaml:"gravityScale,omitempty"`
	Restitution  *float32    `yaml:"restitution,omitempty"`
	Material     string      `yaml:"material,omitempty"`
	Static       bool        `yaml:"static,omitempty"`
	Velocity     [3]float32  `yaml:"velocity,omitempty"`
}

// defaultSurfaceSize is the drawn extent of planes and halfspaces.
const defaultSurfaceSize = 40

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) (rl.Color, error) {
	if name == "" {
		return rl.LightGray, nil
	}
	if c, ok := colorByName[name]; ok {
		return c, nil
	}
	return rl.Color{}, fmt.Errorf("unknown color %q", name)
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return "LightGray"
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Parsing ---

// ParseScene decodes and validates a scene document.
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

// Validate checks every name the loader will need to resolve.
func (sf *SceneFile) Validate() error {
	if sf.Physics.FixedDelta < 0 {
		return fmt.Errorf("physics: fixedDelta must not be negative, got %v", sf.Physics.FixedDelta)
	}
	for i, r := range sf.Physics.Restitution {
		if _, err := physics.ParseMaterial(r.A); err != nil {
			return fmt.Errorf("physics.restitution[%d]: %w", i, err)
		}
		if _, err := physics.ParseMaterial(r.B); err != nil {
			return fmt.Errorf("physics.restitution[%d]: %w", i, err)
		}
	}
	for i, obj := range sf.Objects {
		if _, err := lookupColor(obj.Color); err != nil {
			return fmt.Errorf("objects[%d] %q: %w", i, obj.Name, err)
		}
		if obj.Body == nil {
			continue
		}
		if _, err := physics.ParseShapeKind(obj.Body.Shape); err != nil {
			return fmt.Errorf("objects[%d] %q: %w", i, obj.Name, err)
		}
		if obj.Body.Material != "" {
			if _, err := physics.ParseMaterial(obj.Body.Material); err != nil {
				return fmt.Errorf("objects[%d] %q: %w", i, obj.Name, err)
			}
		}
	}
	return nil
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Apply(sf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	w.logger.Info("scene loaded", "path", path, "objects", len(sf.Objects), "bodies", w.Physics.BodyCount())
	return nil
}

// Apply configures the simulation from sf and spawns its objects.
func (w *World) Apply(sf *SceneFile) error {
	if sf.Name != "" {
		w.Name = sf.Name
	}
	if sf.Physics.Gravity != nil {
		w.Physics.Gravity = vec3(*sf.Physics.Gravity)
	}
	if sf.Physics.FixedDelta > 0 {
		w.Settings.FixedDelta = sf.Physics.FixedDelta
	}
	for _, r := range sf.Physics.Restitution {
		a, err := physics.ParseMaterial(r.A)
		if err != nil {
			return err
		}
		b, err := physics.ParseMaterial(r.B)
		if err != nil {
			return err
		}
		if err := w.Physics.Materials.Set(a, b, r.Value); err != nil {
			return err
		}
	}

	for _, def := range sf.Objects {
		g, err := BuildObject(def)
		if err != nil {
			return err
		}
		w.SpawnObject(g)
	}
	return nil
}

// BuildObject creates a GameObject with a renderer and, when def has one, a
// physics body.
func BuildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	color, err := lookupColor(def.Color)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", def.Name, err)
	}

	if def.Body == nil {
		return g, nil
	}

	body, renderer, err := buildBody(def.Body, color)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", def.Name, err)
	}
	g.AddComponent(renderer)
	g.AddComponent(body)
	return g, nil
}

func buildBody(def *BodyDef, color rl.Color) (*physics.Body, *components.MeshRenderer, error) {
	kind, err := physics.ParseShapeKind(def.Shape)
	if err != nil {
		return nil, nil, err
	}

	var (
		shape    physics.Shape
		renderer *components.MeshRenderer
	)
	switch kind {
	case physics.KindSphere:
		radius := def.Radius
		if radius == 0 {
			radius = 0.5
		}
		sphere := physics.NewSphere(radius)
		shape = sphere
		renderer = components.NewMeshRenderer(components.MeshSphere, color, rl.Vector3{X: sphere.Radius()})
	case physics.KindAABB:
		size := rl.Vector3{X: 1, Y: 1, Z: 1}
		if def.Size != nil {
			size = vec3(*def.Size)
		}
		renderer = components.NewMeshRenderer(components.MeshCube, color, size)
		shape = physics.NewAABB(renderer)
	case physics.KindPlane, physics.KindHalfspace:
		size := rl.Vector3{X: defaultSurfaceSize, Z: defaultSurfaceSize}
		if def.Size != nil {
			size = vec3(*def.Size)
		}
		renderer = components.NewMeshRenderer(components.MeshPlane, color, size)
		if kind == physics.KindPlane {
			shape = physics.NewPlane()
		} else {
			shape = physics.NewHalfspace()
		}
	}

	body := physics.NewBody(shape)
	if def.Mass != nil {
		body.SetMass(*def.Mass)
	}
	if def.Drag != nil {
		body.SetDrag(*def.Drag)
	}
	if def.GravityScale != nil {
		body.SetGravityScale(*def.GravityScale)
	}
	if def.Restitution != nil {
		body.SetRestitution(*def.Restitution)
	}
	if def.Material != "" {
		m, err := physics.ParseMaterial(def.Material)
		if err != nil {
			return nil, nil, err
		}
		body.Material = m
	}
	body.IsStatic = def.Static
	body.Velocity = vec3(def.Velocity)

	return body, renderer, nil
}

// --- Saving ---

// Snapshot captures the current simulation state as a scene document.
func (w *World) Snapshot() *SceneFile {
	gravity := arr3(w.Physics.Gravity)
	sf := &SceneFile{
		Name: w.Name,
		Physics: PhysicsDef{
			Gravity:    &gravity,
			FixedDelta: w.Settings.FixedDelta,
		},
	}

	for _, g := range w.Scene.GameObjects {
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr3(g.Transform.Position),
			Rotation: arr3(g.Transform.Rotation),
			Scale:    arr3(g.Transform.Scale),
		}
		if r := engine.GetComponent[*components.MeshRenderer](g); r != nil {
			def.Color = lookupColorName(r.Color)
		}
		if body := engine.GetComponent[*physics.Body](g); body != nil {
			def.Body = snapshotBody(body, engine.GetComponent[*components.MeshRenderer](g))
		}
		sf.Objects = append(sf.Objects, def)
	}
	return sf
}

func snapshotBody(body *physics.Body, renderer *components.MeshRenderer) *BodyDef {
	mass, drag := body.Mass(), body.Drag()
	gravityScale, restitution := body.GravityScale(), body.Restitution()
	def := &BodyDef{
		Shape:        body.Shape().Kind().String(),
		Mass:         &mass,
		Drag:         &drag,
		GravityScale: &gravityScale,
		Restitution:  &restitution,
		Material:     body.Material.String(),
		Static:       body.IsStatic,
		Velocity:     arr3(body.Velocity),
	}
	switch s := body.Shape().(type) {
	case *physics.Sphere:
		def.Radius = s.Radius()
	default:
		if renderer != nil {
			size := arr3(renderer.Size)
			def.Size = &size
		}
	}
	return def
}

func (w *World) SaveScene(path string) error {
	data, err := yaml.Marshal(w.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
