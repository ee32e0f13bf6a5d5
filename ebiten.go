package gesture

import "github.com/hajimehoshi/ebiten/v2"

// ebitenSource reads mouse and touch state from Ebitengine. Touch IDs are
// mapped to pointer slots 1-9 for as long as the touch lasts.
type ebitenSource struct {
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

func newEbitenSource() *ebitenSource {
	return &ebitenSource{}
}

// Focused reports whether the game window has focus.
func (e *ebitenSource) Focused() bool {
	return ebiten.IsFocused()
}

// Modifiers reads the current keyboard modifier state.
func (e *ebitenSource) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// Poll reports the mouse as pointer 0 and every active touch in its slot.
func (e *ebitenSource) Poll(buf []RawPointer) []RawPointer {
	mx, my := ebiten.CursorPosition()
	mouse := RawPointer{ID: 0, X: float64(mx), Y: float64(my)}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		mouse.Pressed, mouse.Button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		mouse.Pressed, mouse.Button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		mouse.Pressed, mouse.Button = true, MouseButtonMiddle
	}
	buf = append(buf, mouse)

	touchIDs := ebiten.AppendTouchIDs(e.prevTouchIDs[:0])
	e.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := e.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		buf = append(buf, RawPointer{
			ID: slot, X: float64(tx), Y: float64(ty),
			Pressed: true, Button: MouseButtonLeft,
		})
	}

	// Free slots whose touch ended; the scene releases them.
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && !active[i] {
			e.touchUsed[i] = false
			e.touchMap[i] = 0
		}
	}
	return buf
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (e *ebitenSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && e.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !e.touchUsed[i] {
			e.touchUsed[i] = true
			e.touchMap[i] = tid
			return i
		}
	}
	return -1
}
