// Package sched defines the timer port the game runs on and a virtual-clock
// implementation of it.
//
// Every implementation dispatches callbacks one at a time on a single host
// loop, so callbacks never need locks. A callback whose handle was cancelled
// must never run, even if its timer already expired.
package sched

import "time"

// Handle identifies one scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	// Schedule arranges for fn to run once after delay.
	// A zero delay runs fn as the next dispatched callback, never inline.
	Schedule(delay time.Duration, fn func()) Handle

	// Cancel prevents the callback from running. Unknown, fired or already
	// cancelled handles are ignored.
	Cancel(h Handle)
}
