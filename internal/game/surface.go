package game

// Surface receives drawing notifications from the Controller.
// It never decides anything: collision and escape truth live in the Controller.
type Surface interface {
	Create(b Bubble)
	Move(b Bubble)
	Delete(id BubbleID)
	Clear()
	GameOver(score int)
}

// NopSurface discards every notification.
type NopSurface struct{}

func (NopSurface) Create(Bubble) {}
func (NopSurface) Move(Bubble) {}
func (NopSurface) Delete(BubbleID) {}
func (NopSurface) Clear() {}
func (NopSurface) GameOver(int) {}

// Stats wraps a Surface and counts bubble lifecycle events across sessions.
//
// A deleted bubble whose last known position is past the top edge is counted
// as escaped, any other deletion as popped. This holds because the Controller
// removes escaped bubbles in the same pass that moved them out.
type Stats struct {
	Next Surface // May be nil

	Spawned  int
	Popped   int
	Escaped  int
	Sessions int
	Finished bool // Last session ended in game over

	live map[BubbleID]Bubble
}

// NewStats wraps next, which may be nil.
func NewStats(next Surface) *Stats {
	return &Stats{Next: next, live: make(map[BubbleID]Bubble)}
}

// Create implements Surface.
func (s *Stats) Create(b Bubble) {
	s.Spawned++
	s.live[b.ID] = b
	if s.Next != nil {
		s.Next.Create(b)
	}
}

// Move implements Surface.
func (s *Stats) Move(b Bubble) {
	s.live[b.ID] = b
	if s.Next != nil {
		s.Next.Move(b)
	}
}

// Delete implements Surface.
func (s *Stats) Delete(id BubbleID) {
	if b, ok := s.live[id]; ok {
		if b.Escaped() {
			s.Escaped++
		} else {
			s.Popped++
		}
		delete(s.live, id)
	}
	if s.Next != nil {
		s.Next.Delete(id)
	}
}

// Clear implements Surface. Clear marks the start of a session.
func (s *Stats) Clear() {
	s.Sessions++
	s.Finished = false
	clear(s.live)
	if s.Next != nil {
		s.Next.Clear()
	}
}

// GameOver implements Surface.
func (s *Stats) GameOver(score int) {
	s.Finished = true
	if s.Next != nil {
		s.Next.GameOver(score)
	}
}
