package physics

import (
	"io"

	"rigid3d/internal/engine"

	"github.com/charmbracelet/log"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGravity is the acceleration applied to bodies with gravity scale 1.
var DefaultGravity = rl.Vector3{X: 0, Y: -10, Z: 0}

// World owns the body registry and runs the fixed-step update. It is not
// safe for concurrent use; the host drives it from a single tick.
type World struct {
	Gravity   rl.Vector3
	Materials *RestitutionTable

	// OnContact fires once per colliding pair during Step. Listeners may call
	// RemoveBody; the removed body takes no further part in the step.
	OnContact engine.EventWithArg[Contact]

	bodies   []*Body
	contacts []Contact
	stepping bool
	logger   *log.Logger
}

func NewWorld() *World {
	return &World{
		Gravity:   DefaultGravity,
		Materials: DefaultRestitution(),
		bodies:    make([]*Body, 0),
		logger:    log.Default().WithPrefix("physics"),
	}
}

// SetLogger replaces the world's logger. nil discards output.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	w.logger = l
}

// AddBody registers b. A body already in the registry is not added twice.
func (w *World) AddBody(b *Body) {
	if b == nil {
		return
	}
	if w.indexOf(b) >= 0 {
		w.logger.Debug("body already registered", "body", bodyName(b))
		return
	}
	b.removed = false
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters b and destroys its GameObject. Removing a body that
// isn't registered is a no-op. During Step the body is only marked; the
// registry drops it at the start of the next step.
func (w *World) RemoveBody(b *Body) {
	i := w.indexOf(b)
	if i < 0 || b.removed {
		return
	}
	b.removed = true
	if g := b.GetGameObject(); g != nil {
		g.Destroy()
	}
	if !w.stepping {
		w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	}
}

func (w *World) indexOf(b *Body) int {
	for i, other := range w.bodies {
		if other == b {
			return i
		}
	}
	return -1
}

// Bodies returns a copy of the registry in insertion order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// BodyCount returns the number of registered bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Contacts returns the pairs that collided during the last Step. The slice
// is reused by the next Step.
func (w *World) Contacts() []Contact {
	return w.contacts
}

// MaterialRestitution looks up the combined restitution for two bodies'
// surface materials.
func (w *World) MaterialRestitution(a, b *Body) float32 {
	return w.Materials.Lookup(a.Material, b.Material)
}

// Step advances the simulation by dt: prune, integrate, clear highlights,
// then detect and resolve every pair.
func (w *World) Step(dt float32) {
	if !(dt >= 0) || math32.IsInf(dt, 0) {
		w.logger.Warn("skipping step with invalid dt", "dt", dt)
		return
	}

	w.stepping = true
	defer func() { w.stepping = false }()

	w.prune()
	Integrate(w.bodies, w.Gravity, dt)
	w.resetHighlights()

	w.contacts = w.contacts[:0]
	ctx := stepContext{gravity: w.Gravity, dt: dt}
	detectCollisions(w.bodies, ctx, w.recordContact)
}

// prune drops removed, shapeless and destroyed bodies from the registry.
func (w *World) prune() {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if b.Valid() {
			kept = append(kept, b)
			continue
		}
		w.logger.Debug("pruned body", "body", bodyName(b))
	}
	clear(w.bodies[len(kept):])
	w.bodies = kept
}

func (w *World) resetHighlights() {
	for _, b := range w.bodies {
		setHighlight(b, false)
	}
}

func (w *World) recordContact(c Contact) {
	setHighlight(c.A, true)
	setHighlight(c.B, true)
	w.contacts = append(w.contacts, c)
	w.OnContact.Invoke(c)
}

func setHighlight(b *Body, on bool) {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	for _, comp := range g.Components() {
		if h, ok := comp.(engine.Highlighter); ok {
			h.SetHighlighted(on)
		}
	}
}

func bodyName(b *Body) string {
	if b == nil {
		return "<nil>"
	}
	if g := b.GetGameObject(); g != nil {
		return g.Name
	}
	return "<detached>"
}
