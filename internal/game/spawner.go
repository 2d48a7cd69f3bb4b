package game

import (
	"math/rand"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

// Spawner creates bubbles at the bottom edge of the canvas.
type Spawner struct {
	xRange      config.Range
	radiusRange config.Range
	bottom      float64
	rng         *rand.Rand
}

// NewSpawner creates a spawner drawing from rng. cfg must be valid.
func NewSpawner(cfg config.BubbleConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		xRange:      cfg.XRange,
		radiusRange: cfg.RadiusRange,
		bottom:      float64(cfg.Canvas.Height),
		rng:         rng,
	}
}

// Spawn returns a new bubble with a uniformly random x and radius.
func (s *Spawner) Spawn(id BubbleID) Bubble {
	x := s.between(s.xRange)
	r := s.between(s.radiusRange)
	return Bubble{
		ID:     id,
		Center: core.Point{X: float64(x), Y: s.bottom},
		Radius: r,
	}
}

// between draws from the inclusive range.
func (s *Spawner) between(r config.Range) int {
	return r.Min + s.rng.Intn(r.Max-r.Min+1)
}
