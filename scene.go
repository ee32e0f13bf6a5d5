package gesture

import (
	"io"
	"time"
)

// Scene is the top-level object that owns the node tree, the gesture
// recognizer, its timers and the input state. A Scene is driven by calling
// Update once per frame from a single goroutine.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	cfg        Config
	clock      Clock
	timers     timerQueue
	recognizer *Recognizer
	debugOut   io.Writer

	// Input state
	source      InputSource
	rawBuf      []RawPointer
	captured    [maxPointers]*Node
	pointers    [maxPointers]pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent
	lastInject  time.Time
	testRunner  *TestRunner
}

// NewScene creates a scene with a pre-created root container, the default
// Config, the system clock and Ebitengine as input source.
func NewScene() *Scene {
	root := NewContainer("root")
	s := &Scene{
		root:     root,
		cfg:      DefaultConfig(),
		clock:    SystemClock{},
		source:   newEbitenSource(),
		debugOut: debugOut,
	}
	s.recognizer = NewRecognizer(s.cfg, s)
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// On registers a scene-level listener: a direct listener on the root, which
// every gesture reaches last unless propagation is stopped.
func (s *Scene) On(t GestureType, fn Handler) ListenerHandle {
	return s.root.On(t, fn)
}

// OnDelegate registers a delegated listener on the root.
func (s *Scene) OnDelegate(t GestureType, sel Selector, fn Handler) ListenerHandle {
	return s.root.OnDelegate(t, sel, fn)
}

// Update fires due timers, then consumes one frame of input: the next
// injected event if any is queued, otherwise the input source.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.timers.fireDue(s.clock.Now())
	s.processInput()
}

// Config returns the active configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// SetConfig validates cfg and replaces the recognizer with one built from
// it. Gestures in progress are dropped without emitting anything.
func (s *Scene) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.recognizer.Reset()
	s.releaseAllPointers()
	s.cfg = cfg
	s.recognizer = NewRecognizer(cfg, s)
	if s.debug {
		s.recognizer.debugOut = s.debugOut
	}
	return nil
}

// Recognizer returns the scene's gesture recognizer.
func (s *Scene) Recognizer() *Recognizer {
	return s.recognizer
}

// SetClock replaces the time source. Call it before any input is processed.
func (s *Scene) SetClock(c Clock) {
	if c == nil {
		c = SystemClock{}
	}
	s.clock = c
}

// SetInputSource replaces the input backend. A nil source leaves the scene
// fed only by injected events.
func (s *Scene) SetInputSource(src InputSource) {
	s.source = src
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. The node checks it turns on
// are process-wide, shared by every Scene. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and every
// gesture session transition is traced to the debug output (stderr unless
// SetDebugOutput was called).
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.recognizer.debugOut = s.debugOut
	} else {
		s.recognizer.debugOut = nil
	}
}

// SetDebugOutput redirects debug output. Recognizer traces go to w for this
// scene only; tree warnings are process-wide, so the last call on any scene
// wins for those.
func (s *Scene) SetDebugOutput(w io.Writer) {
	s.debugOut = w
	debugOut = w
	if s.debug {
		s.recognizer.debugOut = w
	}
}

// PendingTimers returns the number of scheduled timers not yet fired.
func (s *Scene) PendingTimers() int {
	return s.timers.pending()
}

// --- Host ---

// Now returns the scene clock's current time.
func (s *Scene) Now() time.Time {
	return s.clock.Now()
}

// AfterFunc schedules fn to run from a later Update once d has elapsed on the
// scene clock.
func (s *Scene) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return s.timers.schedule(s.clock.Now().Add(d), fn)
}

// StopTimer cancels a timer scheduled with AfterFunc. It is safe to call
// with a handle that already fired or was stopped.
func (s *Scene) StopTimer(h TimerHandle) {
	s.timers.cancel(h)
}
