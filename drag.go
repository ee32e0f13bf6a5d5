package gesture

import "math"

// dragState is the classifier's per-session memory.
type dragState struct {
	// target is the node the whole drag is attributed to. It is resolved
	// once, from the sample that started the drag, and not re-resolved when
	// the pointer leaves it: a drag that slides across siblings still
	// belongs to the node it started on.
	target      *Node
	orientation Orientation
	events      int
}

// beginDrag fixes the drag's target and orientation from the first sample
// past the threshold. That sample becomes the delta origin, so the first
// drag event carries a zero delta.
func (r *Recognizer) beginDrag(ss *session, s Sample) {
	adx := math.Abs(s.X - ss.start.X)
	ady := math.Abs(s.Y - ss.start.Y)
	ss.drag.orientation = OrientationVertical
	if adx > ady {
		ss.drag.orientation = OrientationHorizontal
	}
	ss.drag.target = s.Target
	if ss.drag.target == nil {
		ss.drag.target = ss.start.Target
	}
	ss.last = s
	r.debugf("pointer %d: drag %s on %s", ss.pointerID, ss.drag.orientation, nodeLabel(ss.drag.target))
}

// dragMove emits one drag event; deltas are against the previous sample.
func (r *Recognizer) dragMove(ss *session, s Sample) {
	r.emitDrag(ss, s, false)
}

// endDrag emits the final drag event and, if the whole session was shorter
// than FlickDuration, a flick with the same payload.
func (r *Recognizer) endDrag(ss *session, s Sample) {
	ev := r.emitDrag(ss, s, true)
	elapsed := s.Time.Sub(ss.start.Time)
	if elapsed < r.cfg.FlickDuration {
		ev.Type = GestureFlick
		r.emit(ss.drag.target, ev)
		return
	}
	r.debugf("pointer %d: drag took %v over %d events, no flick", ss.pointerID, elapsed, ss.drag.events)
}

func (r *Recognizer) emitDrag(ss *session, s Sample, end bool) Event {
	ev := r.sessionEvent(GestureDrag, ss, s)
	ev.DX = s.X - ss.last.X
	ev.DY = s.Y - ss.last.Y
	ev.Orientation = ss.drag.orientation
	ev.End = end
	ss.last = s
	ss.drag.events++
	r.emit(ss.drag.target, ev)
	return ev
}
