package sched

import "time"

// Manual is a Scheduler driven by a virtual clock.
// Nothing runs until the owner calls Advance or RunNext, which makes
// game logic testable without waiting on real time.
type Manual struct {
	now    time.Duration
	last   Handle
	seq    uint64
	timers map[Handle]*manualTimer
}

type manualTimer struct {
	due time.Duration
	seq uint64 // Schedule order, breaks ties between equal due times
	fn  func()
}

// NewManual creates a virtual-clock scheduler starting at time zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[Handle]*manualTimer)}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Schedule implements Scheduler. Negative delays are treated as zero.
func (m *Manual) Schedule(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	m.last++
	m.seq++
	m.timers[m.last] = &manualTimer{due: m.now + delay, seq: m.seq, fn: fn}
	return m.last
}

// Cancel implements Scheduler.
func (m *Manual) Cancel(h Handle) {
	delete(m.timers, h)
}

// Pending returns the number of callbacks waiting to run.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// RunNext advances the clock to the earliest pending callback and runs it.
// Returns false if nothing is pending.
func (m *Manual) RunNext() bool {
	h, t, ok := m.earliest()
	if !ok {
		return false
	}
	m.fire(h, t)
	return true
}

// Advance moves the clock forward by d, running every callback that becomes
// due on the way in due-time order, including callbacks scheduled by other
// callbacks inside the window. Returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	deadline := m.now + max(d, 0)
	ran := 0
	for {
		h, t, ok := m.earliest()
		if !ok || t.due > deadline {
			break
		}
		m.fire(h, t)
		ran++
	}
	m.now = deadline
	return ran
}

func (m *Manual) fire(h Handle, t *manualTimer) {
	delete(m.timers, h)
	if t.due > m.now {
		m.now = t.due
	}
	t.fn()
}

func (m *Manual) earliest() (Handle, *manualTimer, bool) {
	var (
		bestH Handle
		best  *manualTimer
	)
	for h, t := range m.timers {
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			bestH, best = h, t
		}
	}
	return bestH, best, best != nil
}
