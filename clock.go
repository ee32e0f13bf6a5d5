package gesture

import "time"

// Clock is the time source a Scene stamps samples and schedules timers with.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a clock that only moves when told to. Use it to drive
// deterministic gesture timelines in tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a ManualClock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d. Timers are not fired here; the Scene
// fires due timers on its next Update.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) { c.now = t }

// --- Timer queue ---

// TimerHandle identifies a scheduled callback. The zero handle is never
// issued, so a zero-valued field means "no timer".
type TimerHandle uint64

type timerEntry struct {
	handle TimerHandle
	at     time.Time
	fn     func()
}

// timerQueue holds pending callbacks for a single logical thread. Nothing
// fires until fireDue is called, which the Scene does once per Update.
type timerQueue struct {
	entries []timerEntry
	next    TimerHandle
}

// schedule registers fn to run once at or after at.
func (q *timerQueue) schedule(at time.Time, fn func()) TimerHandle {
	q.next++
	q.entries = append(q.entries, timerEntry{handle: q.next, at: at, fn: fn})
	return q.next
}

// cancel removes a pending timer. Cancelling a fired, cancelled or zero
// handle is a no-op.
func (q *timerQueue) cancel(h TimerHandle) {
	if h == 0 {
		return
	}
	for i := range q.entries {
		if q.entries[i].handle == h {
			copy(q.entries[i:], q.entries[i+1:])
			q.entries[len(q.entries)-1] = timerEntry{}
			q.entries = q.entries[:len(q.entries)-1]
			return
		}
	}
}

// pending returns the number of timers not yet fired.
func (q *timerQueue) pending() int {
	return len(q.entries)
}

// fireDue runs every timer whose deadline is at or before now, earliest
// deadline first and scheduling order among equal deadlines. Timers that a
// callback schedules are fired in the same pass if they are already due.
// Returns the number of callbacks run.
func (q *timerQueue) fireDue(now time.Time) int {
	fired := 0
	for {
		idx := -1
		for i := range q.entries {
			e := &q.entries[i]
			if e.at.After(now) {
				continue
			}
			if idx < 0 || e.at.Before(q.entries[idx].at) ||
				(e.at.Equal(q.entries[idx].at) && e.handle < q.entries[idx].handle) {
				idx = i
			}
		}
		if idx < 0 {
			return fired
		}
		fn := q.entries[idx].fn
		copy(q.entries[idx:], q.entries[idx+1:])
		q.entries[len(q.entries)-1] = timerEntry{}
		q.entries = q.entries[:len(q.entries)-1]
		fn()
		fired++
	}
}
