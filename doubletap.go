package gesture

// pendingTap is a tap held back while a second tap may still turn it into
// a double-tap. There is at most one per pointer ID.
type pendingTap struct {
	target *Node
	ev     Event
	timer  TimerHandle
}

// tapCandidate takes a tap that qualified on release. A first tap is held
// for DoubleTapInterval; a second one on the same node inside that window
// becomes a single doubletap and the held tap is dropped.
func (r *Recognizer) tapCandidate(pointerID int, target *Node, ev Event) {
	if p := r.pending[pointerID]; p != nil {
		r.host.StopTimer(p.timer)
		delete(r.pending, pointerID)
		if p.target == target {
			ev.Type = GestureDoubleTap
			r.emit(target, ev)
			return
		}
		// Different node: the held tap can no longer be promoted.
		r.emit(p.target, p.ev)
	}

	p := &pendingTap{target: target, ev: ev}
	p.timer = r.host.AfterFunc(r.cfg.DoubleTapInterval, func() { r.tapExpired(pointerID, p) })
	r.pending[pointerID] = p
	r.debugf("pointer %d: tap on %s held for %v", pointerID, nodeLabel(target), r.cfg.DoubleTapInterval)
}

// tapExpired emits the held tap once the double-tap window closes. Stale
// timers (the tap was promoted or invalidated) do nothing.
func (r *Recognizer) tapExpired(pointerID int, p *pendingTap) {
	if r.pending[pointerID] != p {
		return
	}
	delete(r.pending, pointerID)
	r.emit(p.target, p.ev)
}

// invalidatePendingTap forgets the held tap for pointerID without emitting it.
func (r *Recognizer) invalidatePendingTap(pointerID int) {
	p := r.pending[pointerID]
	if p == nil {
		return
	}
	r.host.StopTimer(p.timer)
	delete(r.pending, pointerID)
	r.debugf("pointer %d: held tap on %s dropped", pointerID, nodeLabel(p.target))
}

// PendingTaps returns the number of taps currently held back waiting for a
// possible double-tap.
func (r *Recognizer) PendingTaps() int {
	return len(r.pending)
}
