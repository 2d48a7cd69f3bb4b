// Package tui provides the Bubble Tea integration for Bubble Pop.
// It hosts the game controller on the Bubble Tea event loop, maps mouse
// presses onto the canvas and renders the companion screens.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubblepop/internal/sched"
)

var schedulerIDs atomic.Uint64

// FireMsg is delivered when a TeaScheduler timer expires.
type FireMsg struct {
	Scheduler uint64
	Handle    sched.Handle
}

// TeaScheduler implements sched.Scheduler on top of Bubble Tea.
//
// Schedule queues a tea.Tick command; the owning model must return Flush()
// from every Update so the command reaches the runtime. Callbacks run inside
// Update when their FireMsg arrives, and only if the handle is still active,
// so a cancelled timer never reaches game code even if its tick already fired.
type TeaScheduler struct {
	id      uint64
	last    sched.Handle
	active  map[sched.Handle]func()
	pending []tea.Cmd
}

// NewTeaScheduler creates a scheduler with an identity distinct from every
// other TeaScheduler in the process.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{
		id:     schedulerIDs.Add(1),
		active: make(map[sched.Handle]func()),
	}
}

// Schedule implements sched.Scheduler.
func (s *TeaScheduler) Schedule(delay time.Duration, fn func()) sched.Handle {
	if delay < 0 {
		delay = 0
	}
	s.last++
	h := s.last
	s.active[h] = fn

	id := s.id
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return FireMsg{Scheduler: id, Handle: h}
	}))
	return h
}

// Cancel implements sched.Scheduler.
func (s *TeaScheduler) Cancel(h sched.Handle) {
	delete(s.active, h)
}

// CancelAll drops every active timer.
func (s *TeaScheduler) CancelAll() {
	clear(s.active)
	s.pending = nil
}

// activeCount returns the number of timers that will still run.
func (s *TeaScheduler) activeCount() int {
	return len(s.active)
}

// Flush returns the commands queued since the last call, or nil.
func (s *TeaScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Dispatch runs the callback for msg. It returns false if msg belongs to
// another scheduler. Stale or cancelled handles are consumed silently.
func (s *TeaScheduler) Dispatch(msg FireMsg) bool {
	if msg.Scheduler != s.id {
		return false
	}
	fn, ok := s.active[msg.Handle]
	if !ok {
		return true
	}
	delete(s.active, msg.Handle)
	fn()
	return true
}
