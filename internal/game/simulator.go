package game

import "slices"

// Simulator advances bubbles by one update tick.
type Simulator struct {
	step float64
}

// NewSimulator creates a simulator moving bubbles up by step canvas units per tick.
func NewSimulator(step int) *Simulator {
	return &Simulator{step: float64(step)}
}

// Tick moves every live bubble up and reports escapes to c in spawn order.
// The pass stops as soon as c reaches game over; the remaining bubbles stay
// where they are.
func (s *Simulator) Tick(c *Controller) {
	if c.phase != PhaseRunning {
		return
	}

	// Escapes shrink c.bubbles while we iterate
	for _, b := range slices.Clone(c.bubbles) {
		b.Center.Y -= s.step
		c.surface.Move(*b)

		if b.Escaped() {
			c.OnBubbleEscaped(*b)
			if c.phase == PhaseGameOver {
				break
			}
		}
	}
}
