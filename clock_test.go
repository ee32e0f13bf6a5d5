package gesture

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var epoch = time.Unix(1000, 0)

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	if !c.Now().Equal(epoch) {
		t.Fatalf("Now = %v, want %v", c.Now(), epoch)
	}
	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(epoch); got != 250*time.Millisecond {
		t.Errorf("after Advance: %v", got)
	}
	c.Set(epoch)
	if !c.Now().Equal(epoch) {
		t.Errorf("after Set: %v", c.Now())
	}
}

func TestTimerQueue_FiresInDeadlineOrder(t *testing.T) {
	var q timerQueue
	var got []string
	q.schedule(epoch.Add(30*time.Millisecond), func() { got = append(got, "c") })
	q.schedule(epoch.Add(10*time.Millisecond), func() { got = append(got, "a") })
	q.schedule(epoch.Add(20*time.Millisecond), func() { got = append(got, "b1") })
	q.schedule(epoch.Add(20*time.Millisecond), func() { got = append(got, "b2") })

	if n := q.fireDue(epoch.Add(5 * time.Millisecond)); n != 0 {
		t.Fatalf("fired %d timers early", n)
	}
	if n := q.fireDue(epoch.Add(20 * time.Millisecond)); n != 3 {
		t.Errorf("fired = %d, want 3", n)
	}
	q.fireDue(epoch.Add(time.Hour))

	if diff := cmp.Diff([]string{"a", "b1", "b2", "c"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if q.pending() != 0 {
		t.Errorf("pending = %d", q.pending())
	}
}

func TestTimerQueue_Cancel(t *testing.T) {
	var q timerQueue
	fired := false
	h := q.schedule(epoch, func() { fired = true })
	if h == 0 {
		t.Fatal("zero handle issued")
	}
	q.cancel(h)
	q.cancel(h)
	q.cancel(0)
	q.fireDue(epoch.Add(time.Second))
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestTimerQueue_CancelFromCallback(t *testing.T) {
	var q timerQueue
	var second TimerHandle
	fired := 0
	q.schedule(epoch, func() {
		fired++
		q.cancel(second)
	})
	second = q.schedule(epoch, func() { fired++ })

	q.fireDue(epoch)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestTimerQueue_ScheduleFromCallback(t *testing.T) {
	var q timerQueue
	var got []string
	q.schedule(epoch, func() {
		got = append(got, "outer")
		q.schedule(epoch, func() { got = append(got, "due") })
		q.schedule(epoch.Add(time.Second), func() { got = append(got, "later") })
	})

	if n := q.fireDue(epoch); n != 2 {
		t.Errorf("fired = %d, want 2", n)
	}
	if diff := cmp.Diff([]string{"outer", "due"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if q.pending() != 1 {
		t.Errorf("pending = %d, want 1", q.pending())
	}
}

func TestScene_AfterFuncUsesSceneClock(t *testing.T) {
	s := NewScene()
	s.SetInputSource(nil)
	clock := NewManualClock(epoch)
	s.SetClock(clock)

	fired := false
	h := s.AfterFunc(10*time.Millisecond, func() { fired = true })
	s.Update()
	if fired {
		t.Fatal("fired before deadline")
	}
	if s.PendingTimers() != 1 {
		t.Errorf("PendingTimers = %d, want 1", s.PendingTimers())
	}
	clock.Advance(10 * time.Millisecond)
	s.Update()
	if !fired {
		t.Error("did not fire at deadline")
	}
	s.StopTimer(h)
}
