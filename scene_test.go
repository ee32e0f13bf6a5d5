package gesture

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
	if s.Config() != DefaultConfig() {
		t.Errorf("Config = %+v, want defaults", s.Config())
	}
	if s.Recognizer() == nil {
		t.Error("recognizer should be created")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetClockNilFallsBack(t *testing.T) {
	s := NewScene()
	s.SetClock(nil)
	if _, ok := s.clock.(SystemClock); !ok {
		t.Errorf("clock = %T, want SystemClock", s.clock)
	}
}

type storeSpy struct{ got []GestureEvent }

func (s *storeSpy) EmitEvent(e GestureEvent) { s.got = append(s.got, e) }

func TestSceneDispatch_EntityStore(t *testing.T) {
	s := NewScene()
	s.SetInputSource(nil)
	spy := &storeSpy{}
	s.SetEntityStore(spy)

	withID := NewNode("e", 10, 10)
	withID.EntityID = 42
	plain := NewNode("p", 10, 10)
	s.Root().AddChild(withID)
	s.Root().AddChild(plain)

	called := 0
	withID.On(GestureDrag, func(*Event) { called++ })

	s.Dispatch(withID, &Event{Type: GestureDrag, X: 3, DX: 1, End: true, Orientation: OrientationHorizontal})
	s.Dispatch(plain, &Event{Type: GestureTap})
	s.Dispatch(nil, &Event{Type: GestureTap})

	if called != 1 {
		t.Errorf("listener called %d times, want 1", called)
	}
	if len(spy.got) != 1 {
		t.Fatalf("store got %d events, want 1", len(spy.got))
	}
	want := GestureEvent{Type: GestureDrag, EntityID: 42, X: 3, DX: 1, End: true, Orientation: OrientationHorizontal}
	if spy.got[0] != want {
		t.Errorf("event = %+v, want %+v", spy.got[0], want)
	}
}

func TestSceneDebugMode_TracesTransitions(t *testing.T) {
	old := debugOut
	defer func() { debugOut = old }()

	f := newFixture(t)
	var buf bytes.Buffer
	f.s.SetDebugOutput(&buf)
	f.s.SetDebugMode(true)
	defer f.s.SetDebugMode(false)

	f.s.InjectTap(10, 10)
	f.settle()

	out := buf.String()
	for _, want := range []string{"[gesture] pointer 0: down", "tap on \"a\""} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	f.s.SetDebugMode(false)
	f.s.InjectTap(10, 10)
	f.settle()
	if buf.Len() != 0 {
		t.Errorf("debug output after disabling: %q", buf.String())
	}
}

func TestSceneSetConfig_DropsGestureInProgress(t *testing.T) {
	f := newFixture(t)
	var rec recorder
	f.a.On(GesturePress, rec.handle)
	f.a.On(GestureTap, rec.handle)

	f.s.InjectPointer(0, 10, 10, true, 0)
	f.run(2 * frame)
	if err := f.s.SetConfig(testConfig); err != nil {
		t.Fatal(err)
	}
	f.run(100 * time.Millisecond)

	if rec.count() != 0 {
		t.Errorf("expected nothing, got %d events", rec.count())
	}
	if f.s.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, want 0", f.s.PendingTimers())
	}
}

func TestSceneDebugOutput_TraceIsPerSceneWarningsAreShared(t *testing.T) {
	old := debugOut
	defer func() {
		debugOut = old
		globalDebug = false
	}()

	f1 := newFixture(t)
	f2 := newFixture(t)
	var buf1, buf2 bytes.Buffer
	f1.s.SetDebugOutput(&buf1)
	f1.s.SetDebugMode(true)
	f2.s.SetDebugOutput(&buf2)
	f2.s.SetDebugMode(true)

	f1.s.InjectTap(10, 10)
	f1.settle()
	if !strings.Contains(buf1.String(), "pointer 0: down") {
		t.Errorf("scene 1 trace missing:\n%s", buf1.String())
	}
	if strings.Contains(buf2.String(), "pointer 0") {
		t.Errorf("scene 1 trace leaked into scene 2 output:\n%s", buf2.String())
	}

	// Tree warnings follow the most recent SetDebugOutput.
	buf1.Reset()
	cur := f1.s.Root()
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		next := NewContainer("deep")
		cur.AddChild(next)
		cur = next
	}
	if !strings.Contains(buf2.String(), "tree depth") {
		t.Errorf("expected depth warning in the last-set output, got %q", buf2.String())
	}
	if strings.Contains(buf1.String(), "tree depth") {
		t.Errorf("depth warning went to scene 1 output: %q", buf1.String())
	}
}
