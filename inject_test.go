package gesture

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tanema/gween/ease"
)

func TestInjectTap_ConsumesOneEventPerFrame(t *testing.T) {
	f := newFixture(t)
	f.s.InjectTap(10, 10)
	if !f.s.Injecting() {
		t.Fatal("Injecting should be true with queued events")
	}
	f.run(frame)
	if !f.s.Recognizer().Active(0) {
		t.Error("pointer 0 should be down after the first frame")
	}
	f.run(frame)
	if f.s.Injecting() {
		t.Error("queue should be drained after two frames")
	}
}

func TestInjectPointer_Wait(t *testing.T) {
	f := newFixture(t)
	f.s.InjectPress(10, 10)
	f.s.InjectPointer(0, 10, 10, false, 10*time.Millisecond)

	f.run(5 * frame)
	if !f.s.Injecting() {
		t.Fatal("release consumed before its wait elapsed")
	}
	f.run(6 * frame)
	if f.s.Injecting() {
		t.Error("release not consumed after its wait")
	}
}

func TestInjectPointer_OutOfRangeIgnored(t *testing.T) {
	f := newFixture(t)
	f.s.InjectPointer(-1, 0, 0, true, 0)
	f.s.InjectPointer(maxPointers, 0, 0, true, 0)
	if f.s.Injecting() {
		t.Error("out-of-range pointers should not be queued")
	}
}

func TestInjectCancel(t *testing.T) {
	f := newFixture(t)
	var rec recorder
	f.a.On(GestureTap, rec.handle)
	f.a.On(GesturePress, rec.handle)

	f.s.InjectPress(10, 10)
	f.s.InjectCancel()
	f.s.InjectRelease(10, 10)
	f.settle()

	if len(rec.events) != 0 {
		t.Errorf("expected nothing after cancel, got %d events", len(rec.events))
	}
}

func TestInjectDrag_Path(t *testing.T) {
	f := newFixture(t)
	var xs []float64
	f.a.On(GestureDrag, func(e *Event) { xs = append(xs, e.X) })

	f.s.InjectDrag(0, 0, 40, 0, 50*time.Millisecond, 3)
	f.settle()

	want := []float64{10, 20, 30, 40}
	if diff := cmp.Diff(want, xs, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("drag path mismatch (-want +got):\n%s", diff)
	}
}

func TestInjectDragEased_EndsAtTarget(t *testing.T) {
	f := newFixture(t)
	var last Event
	f.a.On(GestureDrag, func(e *Event) { last = *e })

	f.s.InjectDragEased(0, 0, 60, 30, 40*time.Millisecond, 4, ease.OutQuad)
	f.settle()

	if !last.End || last.X != 60 || last.Y != 30 {
		t.Errorf("last drag = (%v, %v) end=%v, want (60, 30) end=true", last.X, last.Y, last.End)
	}
	if last.StartX != 0 || last.StartY != 0 {
		t.Errorf("start = (%v, %v), want origin", last.StartX, last.StartY)
	}
}
