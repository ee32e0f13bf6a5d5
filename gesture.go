package gesture

import "time"

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// GestureType identifies a kind of recognized gesture.
type GestureType uint8

const (
	GestureTap       GestureType = iota // contact and release with no movement, on the same node
	GesturePress                        // contact held stationary past Config.PressDuration
	GestureDoubleTap                    // two taps on the same node within Config.DoubleTapInterval
	GestureDrag                         // movement while the pointer is down, emitted per sample
	GestureFlick                        // a drag that ended within Config.FlickDuration

	numGestureTypes
)

var gestureTypeNames = [numGestureTypes]string{
	GestureTap:       "tap",
	GesturePress:     "press",
	GestureDoubleTap: "doubletap",
	GestureDrag:      "drag",
	GestureFlick:     "flick",
}

// String returns the lower-case event name ("tap", "press", ...).
func (t GestureType) String() string {
	if t < numGestureTypes {
		return gestureTypeNames[t]
	}
	return "unknown"
}

// ParseGestureType maps an event name back to its GestureType.
func ParseGestureType(name string) (GestureType, bool) {
	for i, n := range gestureTypeNames {
		if n == name {
			return GestureType(i), true
		}
	}
	return 0, false
}

// Orientation is the dominant axis of a drag. It is decided once per session
// from the first movement past the threshold.
type Orientation uint8

const (
	OrientationNone       Orientation = iota // not a drag
	OrientationHorizontal                    // |dx| > |dy| at drag start
	OrientationVertical                      // otherwise
)

// String returns "horizontal", "vertical" or "" for OrientationNone.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return ""
	}
}

// MouseButton identifies a mouse button. Touch pointers report MouseButtonLeft.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Sample is one normalized pointer reading. Samples are immutable once
// recorded.
type Sample struct {
	X, Y      float64
	Time      time.Time
	Target    *Node // topmost node under (X, Y), or the captured node
	Button    MouseButton
	Modifiers KeyModifiers
}

// Event is the payload delivered to listeners. Handlers must treat every
// field as read-only; CurrentTarget is rebound by the dispatcher before each
// handler call.
type Event struct {
	Type GestureType

	X, Y   float64
	DX, DY float64 // delta from the previous sample (drag and flick only)

	// StartX and StartY are the pointer-down coordinates of the session.
	StartX, StartY float64

	Orientation Orientation
	End         bool // true on the last drag event of a session and on flick

	PointerID int
	Button    MouseButton
	Modifiers KeyModifiers
	Time      time.Time

	// Target is the node the gesture is attributed to.
	Target *Node
	// CurrentTarget is the node whose listener is running: the node a direct
	// listener was attached to, or the descendant a delegated listener matched.
	CurrentTarget *Node

	stopped bool
}

// StopPropagation prevents the event from reaching any further node.
// Listeners registered on the same node for the same CurrentTarget as the
// running one still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}
