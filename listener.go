package gesture

// Handler receives a recognized gesture. Event.CurrentTarget is the node the
// handler is attributed to.
type Handler func(*Event)

// Selector decides whether a descendant node matches a delegated listener.
type Selector func(*Node) bool

// ByClass matches nodes that carry class.
func ByClass(class string) Selector {
	return func(n *Node) bool { return n.HasClass(class) }
}

// ByName matches nodes whose Name equals name.
func ByName(name string) Selector {
	return func(n *Node) bool { return n.Name == name }
}

// --- Listener registry ---

type listener struct {
	id  uint32
	sel Selector // nil for direct listeners
	fn  Handler
}

// listenerSet holds a node's listeners in registration order, per type.
type listenerSet struct {
	byType [numGestureTypes][]listener
}

// listenerIDCounter is shared by all nodes so handles stay unique after reparenting.
var listenerIDCounter uint32

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id   uint32
	node *Node
	typ  GestureType
}

// Remove unregisters the listener so it no longer fires. An emission that is
// already being delivered still reaches it. Removing twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.node == nil || h.node.listeners == nil || h.typ >= numGestureTypes {
		return
	}
	h.node.listeners.byType[h.typ] = removeListener(h.node.listeners.byType[h.typ], h.id)
}

func removeListener(s []listener, id uint32) []listener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			return s[:len(s)-1]
		}
	}
	return s
}

// On registers a direct listener for t on this node. It fires for gestures
// attributed to the node or to any of its descendants.
func (n *Node) On(t GestureType, fn Handler) ListenerHandle {
	return n.addListener(t, nil, fn)
}

// OnDelegate registers a delegated listener for t on this node. It fires
// once per descendant on the target's ancestor chain (the target included,
// this node excluded) that sel matches, with CurrentTarget set to that
// descendant.
func (n *Node) OnDelegate(t GestureType, sel Selector, fn Handler) ListenerHandle {
	if sel == nil {
		panic("gesture: delegated listener needs a selector")
	}
	return n.addListener(t, sel, fn)
}

// Off removes every listener of type t from this node, direct and delegated.
func (n *Node) Off(t GestureType) {
	if n.listeners == nil || t >= numGestureTypes {
		return
	}
	s := n.listeners.byType[t]
	for i := range s {
		s[i] = listener{}
	}
	n.listeners.byType[t] = s[:0]
}

func (n *Node) addListener(t GestureType, sel Selector, fn Handler) ListenerHandle {
	if t >= numGestureTypes {
		panic("gesture: unknown gesture type")
	}
	if fn == nil {
		panic("gesture: nil handler")
	}
	if n.listeners == nil {
		n.listeners = &listenerSet{}
	}
	listenerIDCounter++
	id := listenerIDCounter
	n.listeners.byType[t] = append(n.listeners.byType[t], listener{id: id, sel: sel, fn: fn})
	return ListenerHandle{id: id, node: n, typ: t}
}

// --- Propagation ---

type delivery struct {
	fn    Handler
	node  *Node // CurrentTarget for the call
	owner *Node // node the listener is registered on
}

// propagationPath lists the handlers an event of type t reaches when
// attributed to target, in delivery order. The list is built before any
// handler runs, so handlers that add or remove listeners only affect later
// emissions.
//
// Bubbling goes from target to the root. At each node, delegated listeners
// run first, grouped by matched descendant (closest to target first), then
// direct listeners. Within a group, registration order is kept.
func propagationPath(target *Node, t GestureType) []delivery {
	var out []delivery
	for cur := target; cur != nil; cur = cur.Parent {
		if cur.listeners == nil {
			continue
		}
		ls := cur.listeners.byType[t]
		if len(ls) == 0 {
			continue
		}
		for el := target; el != cur; el = el.Parent {
			for _, l := range ls {
				if l.sel != nil && l.sel(el) {
					out = append(out, delivery{fn: l.fn, node: el, owner: cur})
				}
			}
		}
		for _, l := range ls {
			if l.sel == nil {
				out = append(out, delivery{fn: l.fn, node: cur, owner: cur})
			}
		}
	}
	return out
}

// deliver runs ev through every listener on target's propagation path.
// StopPropagation takes effect at the end of the current group: the
// listeners sharing one owner and one CurrentTarget.
// Returns the number of handlers called.
func deliver(target *Node, ev *Event) int {
	if target == nil {
		return 0
	}
	path := propagationPath(target, ev.Type)
	ev.Target = target
	called := 0
	for i, d := range path {
		if ev.stopped && (i == 0 || d.node != path[i-1].node || d.owner != path[i-1].owner) {
			break
		}
		ev.CurrentTarget = d.node
		d.fn(ev)
		called++
	}
	ev.CurrentTarget = nil
	return called
}
