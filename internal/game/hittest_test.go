package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

func bubbleAt(id BubbleID, x, y float64, r int) *Bubble {
	return &Bubble{ID: id, Center: core.Point{X: x, Y: y}, Radius: r}
}

func TestHitTest(t *testing.T) {
	bubbles := []*Bubble{bubbleAt(1, 100, 100, 20)}

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"center", 100, 100, true},
		{"left edge", 80, 100, true},
		{"bottom edge", 100, 120, true},
		{"corner outside circle", 119, 119, true},
		{"exact corner", 120, 80, true},
		{"just right", 120.5, 100, false},
		{"just above", 100, 79.9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, hit := HitTest(bubbles, tc.x, tc.y)
			if hit != tc.hit {
				t.Errorf("HitTest(%v, %v) hit = %v, expected %v", tc.x, tc.y, hit, tc.hit)
			}
		})
	}
}

func TestHitTestNewestWins(t *testing.T) {
	bubbles := []*Bubble{
		bubbleAt(1, 100, 100, 30),
		bubbleAt(2, 110, 100, 30),
		bubbleAt(3, 400, 100, 30),
	}

	b, ok := HitTest(bubbles, 105, 100)
	if !ok || b.ID != 2 {
		t.Errorf("HitTest() on overlap = %v, %v; expected bubble 2", b, ok)
	}

	b, ok = HitTest(bubbles, 75, 100)
	if !ok || b.ID != 1 {
		t.Errorf("HitTest() on older-only area = %v, %v; expected bubble 1", b, ok)
	}
}

func TestHitTestEmpty(t *testing.T) {
	if b, ok := HitTest(nil, 0, 0); ok || b != nil {
		t.Errorf("HitTest(nil) = %v, %v; expected no hit", b, ok)
	}
}

func TestSpawnerStaysInRanges(t *testing.T) {
	cfg := config.DefaultBubbleConfig()
	s := NewSpawner(cfg, rand.New(rand.NewSource(7)))

	seenMinR, seenMaxR := false, false
	for i := range 2000 {
		b := s.Spawn(BubbleID(i + 1))
		if b.ID != BubbleID(i+1) {
			t.Fatalf("Spawn() id = %d, expected %d", b.ID, i+1)
		}
		if b.Center.X < float64(cfg.XRange.Min) || b.Center.X > float64(cfg.XRange.Max) {
			t.Fatalf("x = %v outside %+v", b.Center.X, cfg.XRange)
		}
		if b.Radius < cfg.RadiusRange.Min || b.Radius > cfg.RadiusRange.Max {
			t.Fatalf("radius = %d outside %+v", b.Radius, cfg.RadiusRange)
		}
		if b.Center.Y != float64(cfg.Canvas.Height) {
			t.Fatalf("y = %v, expected bottom edge %d", b.Center.Y, cfg.Canvas.Height)
		}
		seenMinR = seenMinR || b.Radius == cfg.RadiusRange.Min
		seenMaxR = seenMaxR || b.Radius == cfg.RadiusRange.Max
	}

	if !seenMinR || !seenMaxR {
		t.Error("radius range bounds should both be reachable")
	}
}

func TestBubbleEscaped(t *testing.T) {
	tests := []struct {
		y       float64
		escaped bool
	}{
		{0, false},
		{-19, false},
		{-20, false},
		{-20.5, true},
		{-100, true},
	}
	for _, tc := range tests {
		b := bubbleAt(1, 0, tc.y, 20)
		if b.Escaped() != tc.escaped {
			t.Errorf("Escaped() at y=%v = %v, expected %v", tc.y, b.Escaped(), tc.escaped)
		}
	}
}

func TestStatsCounts(t *testing.T) {
	var deleted []BubbleID
	next := &recordingSurface{onDelete: func(id BubbleID) { deleted = append(deleted, id) }}
	s := NewStats(next)

	s.Clear()
	s.Create(*bubbleAt(1, 10, 400, 20))
	s.Create(*bubbleAt(2, 10, 400, 20))
	s.Move(*bubbleAt(1, 10, -21, 20))
	s.Delete(1) // escaped
	s.Delete(2) // popped
	s.Delete(2) // unknown, ignored by counters
	s.GameOver(10)

	if s.Spawned != 2 || s.Escaped != 1 || s.Popped != 1 || s.Sessions != 1 || !s.Finished {
		t.Errorf("stats = %+v", s)
	}
	if len(deleted) != 3 {
		t.Errorf("wrapped surface saw %d deletes, expected 3", len(deleted))
	}

	s.Clear()
	if s.Finished || s.Sessions != 2 {
		t.Errorf("after Clear: finished=%v sessions=%d", s.Finished, s.Sessions)
	}
}

type recordingSurface struct {
	NopSurface
	onDelete func(BubbleID)
}

func (r *recordingSurface) Delete(id BubbleID) {
	r.onDelete(id)
}
