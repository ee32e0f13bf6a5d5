package gesture

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// RawPointer is one pointer's level state as reported by an input backend
// for the current frame.
type RawPointer struct {
	ID      int // 0 for the mouse, 1-9 for touches
	X, Y    float64
	Pressed bool
	Button  MouseButton
}

// InputSource is a polled input backend.
type InputSource interface {
	// Poll appends the state of every pointer the backend currently knows
	// about. Touch pointers that are no longer reported are treated as
	// released at their last position.
	Poll(buf []RawPointer) []RawPointer
	// Modifiers returns the keyboard modifiers held this frame.
	Modifiers() KeyModifiers
	// Focused reports whether the backend receives input at all. Losing
	// focus cancels every pointer that is down.
	Focused() bool
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// CapturePointer attributes every sample of pointerID to node instead of
// the node under the pointer, until ReleasePointer or the next release.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = node
	}
}

// ReleasePointer stops routing samples for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// CancelPointer abandons the gesture in progress for pointerID. Nothing is
// emitted for it; the pointer must be released and pressed again.
func (s *Scene) CancelPointer(pointerID int) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	if !ps.down {
		return
	}
	ps.down = false
	s.captured[pointerID] = nil
	s.recognizer.Cancel(pointerID)
}

// releaseAllPointers forgets pointer state without telling the recognizer.
func (s *Scene) releaseAllPointers() {
	for i := range s.pointers {
		s.pointers[i].down = false
		s.captured[i] = nil
	}
}

// --- Input processing ---

// processInput is called from Scene.Update to handle one frame of input.
// Injected events take priority: while any are queued the backend is not
// polled.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.source == nil {
		return
	}
	if !s.source.Focused() {
		for i := 0; i < maxPointers; i++ {
			s.CancelPointer(i)
		}
		return
	}

	mods := s.source.Modifiers()
	s.rawBuf = s.source.Poll(s.rawBuf[:0])

	var seen [maxPointers]bool
	for _, p := range s.rawBuf {
		if p.ID < 0 || p.ID >= maxPointers {
			continue
		}
		seen[p.ID] = true
		s.processPointer(p.ID, p.X, p.Y, p.Pressed, p.Button, mods)
	}

	// Release any pointers the backend stopped reporting.
	for i := 0; i < maxPointers; i++ {
		ps := &s.pointers[i]
		if !seen[i] && ps.down {
			s.processPointer(i, ps.lastX, ps.lastY, false, ps.button, mods)
		}
	}
}

// processPointer turns one pointer's level state into down/move/up samples.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		// Just pressed: keep the button for the whole interaction.
		ps.down = true
		ps.button = button
		s.recognizer.Down(pointerID, s.sample(pointerID, x, y, button, mods))
	case !pressed && ps.down:
		ps.down = false
		s.recognizer.Up(pointerID, s.sample(pointerID, x, y, ps.button, mods))
		// Auto-release capture.
		s.captured[pointerID] = nil
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			s.recognizer.Move(pointerID, s.sample(pointerID, x, y, ps.button, mods))
		}
	}
	ps.lastX = x
	ps.lastY = y
}

// sample stamps a reading with the clock and the node it is attributed to:
// the captured node, or the topmost node under the pointer.
func (s *Scene) sample(pointerID int, x, y float64, button MouseButton, mods KeyModifiers) Sample {
	target := s.captured[pointerID]
	if target == nil {
		target = s.ElementAt(x, y)
	}
	return Sample{
		X:         x,
		Y:         y,
		Time:      s.clock.Now(),
		Target:    target,
		Button:    button,
		Modifiers: mods,
	}
}
