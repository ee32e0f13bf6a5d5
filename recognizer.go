package gesture

import (
	"io"
	"math"
	"time"
)

// Host is everything the Recognizer needs from its surroundings: a time
// source, single-threaded timers and event delivery. Scene implements Host.
type Host interface {
	// Now returns the current time on the host clock.
	Now() time.Time
	// AfterFunc schedules fn to run once after d on the host's logical thread.
	AfterFunc(d time.Duration, fn func()) TimerHandle
	// StopTimer cancels a timer. Stopping a fired or zero handle is a no-op.
	StopTimer(h TimerHandle)
	// Dispatch delivers ev to the listeners of target.
	Dispatch(target *Node, ev *Event)
}

// sessionState is the phase of a single pointer's down/up cycle.
type sessionState uint8

const (
	stateIdle   sessionState = iota
	stateDown                // just pressed, no move seen yet
	stateStill               // moves seen, none past the threshold
	stateMoving              // past the threshold; dragging
	stateEnded               // outcome decided; remaining input is ignored
)

func (st sessionState) String() string {
	switch st {
	case stateIdle:
		return "idle"
	case stateDown:
		return "down"
	case stateStill:
		return "still"
	case stateMoving:
		return "moving"
	case stateEnded:
		return "ended"
	}
	return "unknown"
}

// session tracks one pointer from down to up.
type session struct {
	pointerID  int
	state      sessionState
	start      Sample
	last       Sample
	current    *Node // element under the pointer at the latest sample
	moved      bool
	pressed    bool
	pressTimer TimerHandle
	drag       dragState
}

func (ss *session) active() bool {
	return ss.state != stateIdle && ss.state != stateEnded
}

// Recognizer turns pointer samples into gestures. Each pointer ID owns at
// most one live session; sessions never touch each other's state or timers.
// A Recognizer is not safe for concurrent use: every call, and every timer
// callback, must come from the host's single logical thread.
type Recognizer struct {
	cfg  Config
	host Host

	sessions map[int]*session
	pending  map[int]*pendingTap
	// pressGuard holds the release time of a press, per pointer, so a tap
	// landing right after it is not reported.
	pressGuard map[int]time.Time

	debugOut io.Writer
}

// NewRecognizer creates a Recognizer using cfg and host. cfg is copied.
// Panics if cfg does not validate or host is nil.
func NewRecognizer(cfg Config, host Host) *Recognizer {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	if host == nil {
		panic("gesture: nil host")
	}
	return &Recognizer{
		cfg:        cfg,
		host:       host,
		sessions:   make(map[int]*session),
		pending:    make(map[int]*pendingTap),
		pressGuard: make(map[int]time.Time),
	}
}

// Config returns the configuration the Recognizer was built with.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// Active reports whether pointerID has a session between down and up that
// can still produce a gesture.
func (r *Recognizer) Active(pointerID int) bool {
	ss := r.sessions[pointerID]
	return ss != nil && ss.active()
}

// Down starts a session for pointerID. A session still open on the same ID
// is cancelled first: its up was never seen.
func (r *Recognizer) Down(pointerID int, s Sample) {
	if old := r.sessions[pointerID]; old != nil {
		r.debugf("pointer %d: down while %s, dropping stale session", pointerID, old.state)
		r.endSession(old)
	}
	ss := &session{
		pointerID: pointerID,
		state:     stateDown,
		start:     s,
		last:      s,
		current:   s.Target,
	}
	ss.pressTimer = r.host.AfterFunc(r.cfg.PressDuration, func() { r.pressExpired(ss) })
	r.sessions[pointerID] = ss
	r.debugf("pointer %d: down at (%.1f, %.1f) on %s", pointerID, s.X, s.Y, nodeLabel(s.Target))
}

// Move feeds a pointer-move sample. Moves for unknown pointers are ignored.
func (r *Recognizer) Move(pointerID int, s Sample) {
	ss := r.sessions[pointerID]
	if ss == nil {
		return
	}
	ss.current = s.Target
	switch ss.state {
	case stateDown, stateStill:
		if !r.pastThreshold(ss.start, s) {
			ss.state = stateStill
			ss.last = s
			return
		}
		r.stopPressTimer(ss)
		ss.moved = true
		ss.state = stateMoving
		r.debugf("pointer %d: moving", pointerID)
		r.beginDrag(ss, s)
		r.dragMove(ss, s)
	case stateMoving:
		r.dragMove(ss, s)
	default:
		ss.last = s
	}
}

// Up ends the session for pointerID and emits its outcome. Ups for unknown
// pointers are ignored.
func (r *Recognizer) Up(pointerID int, s Sample) {
	ss := r.sessions[pointerID]
	if ss == nil {
		return
	}
	delete(r.sessions, pointerID)
	ss.current = s.Target

	switch ss.state {
	case stateDown, stateStill:
		r.stopPressTimer(ss)
		ss.state = stateEnded
		switch {
		case r.pastThreshold(ss.start, s):
			r.debugf("pointer %d: released %.1fpx away, no tap", pointerID, distance(ss.start, s))
		case s.Target != ss.start.Target:
			r.debugf("pointer %d: released over %s, pressed on %s, no tap",
				pointerID, nodeLabel(s.Target), nodeLabel(ss.start.Target))
		case r.guardedByPress(pointerID, s.Time):
			r.debugf("pointer %d: tap right after press, ignored", pointerID)
		default:
			r.tapCandidate(pointerID, s.Target, r.sessionEvent(GestureTap, ss, s))
		}
	case stateMoving:
		ss.state = stateEnded
		r.endDrag(ss, s)
	case stateEnded:
		if ss.pressed {
			r.pressGuard[pointerID] = s.Time
		}
	}
}

// Cancel drops the session for pointerID without emitting anything, as when
// the backend loses the pointer.
func (r *Recognizer) Cancel(pointerID int) {
	ss := r.sessions[pointerID]
	if ss == nil {
		return
	}
	r.debugf("pointer %d: cancelled while %s", pointerID, ss.state)
	r.endSession(ss)
}

// Reset cancels every session and forgets every tap waiting for a possible
// double-tap. Nothing is emitted.
func (r *Recognizer) Reset() {
	for _, ss := range r.sessions {
		r.endSession(ss)
	}
	for id := range r.pending {
		r.invalidatePendingTap(id)
	}
	clear(r.pressGuard)
}

// endSession stops the session's timers and removes it.
func (r *Recognizer) endSession(ss *session) {
	r.stopPressTimer(ss)
	ss.state = stateEnded
	if r.sessions[ss.pointerID] == ss {
		delete(r.sessions, ss.pointerID)
	}
}

func (r *Recognizer) stopPressTimer(ss *session) {
	r.host.StopTimer(ss.pressTimer)
	ss.pressTimer = 0
}

// pressExpired runs when the press timer fires. It is a no-op when the
// session has moved, ended or been replaced in the meantime.
func (r *Recognizer) pressExpired(ss *session) {
	ss.pressTimer = 0
	if r.sessions[ss.pointerID] != ss || (ss.state != stateDown && ss.state != stateStill) {
		return
	}
	ss.state = stateEnded
	ss.pressed = true
	r.invalidatePendingTap(ss.pointerID)
	ev := r.sessionEvent(GesturePress, ss, ss.last)
	ev.Time = r.host.Now()
	r.emit(ss.current, ev)
}

func (r *Recognizer) guardedByPress(pointerID int, t time.Time) bool {
	at, ok := r.pressGuard[pointerID]
	if !ok {
		return false
	}
	delete(r.pressGuard, pointerID)
	return t.Sub(at) < r.cfg.DoubleTapInterval
}

// pastThreshold reports whether s is farther than MoveThreshold from start.
func (r *Recognizer) pastThreshold(start, s Sample) bool {
	return distance(start, s) > r.cfg.MoveThreshold
}

func distance(a, b Sample) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// sessionEvent builds the payload shared by every gesture of a session.
func (r *Recognizer) sessionEvent(t GestureType, ss *session, s Sample) Event {
	return Event{
		Type:      t,
		X:         s.X,
		Y:         s.Y,
		StartX:    ss.start.X,
		StartY:    ss.start.Y,
		PointerID: ss.pointerID,
		Button:    ss.start.Button,
		Modifiers: s.Modifiers,
		Time:      s.Time,
	}
}
