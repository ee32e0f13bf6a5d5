package gesture

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// syntheticPointerEvent represents a single injected pointer event.
type syntheticPointerEvent struct {
	pointerID int
	x, y      float64
	pressed   bool
	cancel    bool
	// wait is the minimum scene-clock time since the previous injected
	// event was consumed before this one may be.
	wait time.Duration
}

// InjectPointer queues a raw level event for pointerID. It is consumed by
// the first Update at least wait after the previous injected event.
// The higher-level Inject helpers all build on this.
func (s *Scene) InjectPointer(pointerID int, x, y float64, pressed bool, wait time.Duration) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		pointerID: pointerID,
		x:         x, y: y,
		pressed: pressed,
		wait:    wait,
	})
}

// InjectPress queues a mouse press at (x, y).
func (s *Scene) InjectPress(x, y float64) {
	s.InjectPointer(0, x, y, true, 0)
}

// InjectMove queues a mouse move to (x, y) with the button held down.
// Use this between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectPointer(0, x, y, true, 0)
}

// InjectRelease queues a mouse release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.InjectPointer(0, x, y, false, 0)
}

// InjectCancel queues a cancellation of the mouse pointer.
func (s *Scene) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{cancel: true})
}

// InjectTap queues a press and an immediate release at (x, y). Consumes two
// frames.
func (s *Scene) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectHold queues a press at (x, y) and a release held back until d has
// passed on the scene clock.
func (s *Scene) InjectHold(x, y float64, d time.Duration) {
	s.InjectPress(x, y)
	s.InjectPointer(0, x, y, false, d)
}

// InjectDoubleTap queues two taps at (x, y), the second press at least gap
// after the first release.
func (s *Scene) InjectDoubleTap(x, y float64, gap time.Duration) {
	s.InjectTap(x, y)
	s.InjectPointer(0, x, y, true, gap)
	s.InjectRelease(x, y)
}

// InjectDrag queues a linear drag from (fromX, fromY) to (toX, toY) lasting
// d, with steps intermediate moves.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, d time.Duration, steps int) {
	s.InjectDragEased(fromX, fromY, toX, toY, d, steps, ease.Linear)
}

// InjectDragEased queues a press at (fromX, fromY), steps moves along the
// eased path spaced d/(steps+1) apart, and a release at exactly (toX, toY)
// once d has elapsed. steps below 1 are raised to 1.
func (s *Scene) InjectDragEased(fromX, fromY, toX, toY float64, d time.Duration, steps int, fn ease.TweenFunc) {
	if steps < 1 {
		steps = 1
	}
	step := d / time.Duration(steps+1)
	seconds := float32(d.Seconds())
	tx := gween.New(float32(fromX), float32(toX), seconds, fn)
	ty := gween.New(float32(fromY), float32(toY), seconds, fn)

	s.InjectPress(fromX, fromY)
	for i := 0; i < steps; i++ {
		x, _ := tx.Update(float32(step.Seconds()))
		y, _ := ty.Update(float32(step.Seconds()))
		s.InjectPointer(0, float64(x), float64(y), true, step)
	}
	s.InjectPointer(0, toX, toY, false, step)
}

// Injecting reports whether injected events are still queued.
func (s *Scene) Injecting() bool {
	return len(s.injectQueue) > 0
}

// processInjectedInput consumes at most one queued event. Returns true while
// the queue is non-empty, so the real backend is not polled in between
// injected events.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	now := s.clock.Now()
	evt := s.injectQueue[0]
	if !s.lastInject.IsZero() && now.Sub(s.lastInject) < evt.wait {
		return true
	}
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.lastInject = now

	if evt.cancel {
		s.CancelPointer(evt.pointerID)
		return true
	}
	s.processPointer(evt.pointerID, evt.x, evt.y, evt.pressed, MouseButtonLeft, 0)
	return true
}
