// Package game implements Bubble Pop: bubbles spawn at the bottom of the
// canvas, rise at a constant speed, and cost a life when they escape over the
// top edge. Popping one with the pointer scores points.
//
// The Controller owns all state and is the only mutator. Time enters through a
// sched.Scheduler and drawing leaves through a Surface, so the rules run the
// same under a terminal, an SSH session or a virtual clock.
package game

import (
	"github.com/vovakirdan/bubblepop/internal/core"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// BubbleID identifies a bubble within one Controller. IDs increase
// monotonically and are never reused, not even across restarts.
type BubbleID uint64

// Bubble is a rising circle on the canvas.
type Bubble struct {
	ID     BubbleID
	Center core.Point
	Radius int
}

// Bounds returns the bubble's bounding square, edges inclusive.
func (b Bubble) Bounds() core.Box {
	return core.SquareAround(b.Center, float64(b.Radius))
}

// Escaped reports whether the bubble is entirely above the top edge.
func (b Bubble) Escaped() bool {
	return b.Center.Y+float64(b.Radius) < 0
}

// State is a copy of the session state.
type State struct {
	Score   int
	Lives   int
	Bubbles []Bubble // Spawn order, oldest first
	Phase   Phase
}
