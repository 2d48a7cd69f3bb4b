package game

// HitTest returns the newest bubble whose bounding square contains (x, y).
// bubbles must be in spawn order. Points on the square's edge count as hits,
// and so do the corners outside the circle itself.
func HitTest(bubbles []*Bubble, x, y float64) (*Bubble, bool) {
	for i := len(bubbles) - 1; i >= 0; i-- {
		if bubbles[i].Bounds().Contains(x, y) {
			return bubbles[i], true
		}
	}
	return nil, false
}
