package gesture

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, every gesture attributed to a node with a non-zero
// EntityID is forwarded to the store after listeners have run.
type EntityStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries gesture data for the ECS bridge.
type GestureEvent struct {
	Type      GestureType
	EntityID  uint32
	X, Y      float64
	DX, DY    float64
	StartX    float64
	StartY    float64
	// Orientation and End are valid for GestureDrag and GestureFlick.
	Orientation Orientation
	End         bool
	PointerID   int
	Button      MouseButton
	Modifiers   KeyModifiers
}

// emit hands one gesture to the host. ev is passed by value so every
// emission gets its own Event and propagation state never leaks between them.
func (r *Recognizer) emit(target *Node, ev Event) {
	if target == nil {
		r.debugf("pointer %d: %s with no target, dropped", ev.PointerID, ev.Type)
		return
	}
	r.debugf("pointer %d: %s on %s at (%.1f, %.1f) d=(%.1f, %.1f) end=%v",
		ev.PointerID, ev.Type, nodeLabel(target), ev.X, ev.Y, ev.DX, ev.DY, ev.End)
	r.host.Dispatch(target, &ev)
}

// Dispatch delivers ev to target's listeners, bubbling to the root, then
// forwards it to the EntityStore. It may also be called directly to fire a
// synthetic gesture.
func (s *Scene) Dispatch(target *Node, ev *Event) {
	if target == nil || ev == nil {
		return
	}
	deliver(target, ev)
	s.emitGestureEvent(target, ev)
}

// --- ECS bridge ---

func (s *Scene) emitGestureEvent(target *Node, ev *Event) {
	if s.store == nil || target.EntityID == 0 {
		return
	}
	s.store.EmitEvent(GestureEvent{
		Type:        ev.Type,
		EntityID:    target.EntityID,
		X:           ev.X,
		Y:           ev.Y,
		DX:          ev.DX,
		DY:          ev.DY,
		StartX:      ev.StartX,
		StartY:      ev.StartY,
		Orientation: ev.Orientation,
		End:         ev.End,
		PointerID:   ev.PointerID,
		Button:      ev.Button,
		Modifiers:   ev.Modifiers,
	})
}
