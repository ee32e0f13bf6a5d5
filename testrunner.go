package gesture

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a test script. Durations are in
// milliseconds.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Ms     int     `json:"ms,omitempty"`
	Steps  int     `json:"steps,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"tap": true, "press": true, "doubletap": true,
	"drag": true, "cancel": true, "wait": true,
}

// TestRunner plays a scripted gesture timeline into a Scene: taps, presses,
// double-taps, drags, cancellations and waits, one after the other. Attach
// it with SetTestRunner; it advances from Scene.Update.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitUntil time.Time
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
//
//	{"steps": [
//	  {"action": "tap", "x": 10, "y": 10},
//	  {"action": "wait", "ms": 400},
//	  {"action": "press", "x": 10, "y": 10, "ms": 750},
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 100, "toY": 0, "ms": 50, "steps": 5}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Ms < 0 {
			return nil, fmt.Errorf("parse test script: step %d: negative ms", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before timers and input are processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed and
// their injected events consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	now := s.clock.Now()
	if now.Before(r.waitUntil) {
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	d := time.Duration(st.Ms) * time.Millisecond

	switch st.Action {
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "press":
		if d == 0 {
			d = s.cfg.PressDuration * 3 / 2
		}
		s.InjectHold(st.X, st.Y, d)
	case "doubletap":
		if d == 0 {
			d = s.cfg.DoubleTapInterval / 2
		}
		s.InjectDoubleTap(st.X, st.Y, d)
	case "drag":
		if d == 0 {
			d = s.cfg.FlickDuration * 3 / 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, d, st.Steps)
	case "cancel":
		s.InjectCancel()
	case "wait":
		r.waitUntil = now.Add(d)
	}
}
