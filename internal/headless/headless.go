// Package headless plays Bubble Pop on a virtual clock without a terminal.
// A scripted pointer presses live bubbles at a fixed cadence, which makes
// it possible to explore configurations and reproduce sessions by seed.
package headless

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/game"
	"github.com/vovakirdan/bubblepop/internal/sched"
)

// Options control a simulated run.
type Options struct {
	Duration   time.Duration // Virtual time to simulate
	PressEvery time.Duration // Pointer cadence
	PopRate    float64       // Chance in [0, 1] that a press aims at a live bubble
	Seed       int64
	Restart    bool // Start a new session after game over instead of stopping
	Logger     *log.Logger
}

// DefaultOptions returns a one-minute run with a moderately skilled player.
func DefaultOptions() Options {
	return Options{
		Duration:   time.Minute,
		PressEvery: 400 * time.Millisecond,
		PopRate:    0.5,
	}
}

// Result summarizes a run. Counters cover every session of the run.
type Result struct {
	Elapsed   time.Duration
	Score     int // Score of the last session
	BestScore int
	Lives     int
	Phase     game.Phase
	Sessions  int
	Spawned   int
	Popped    int
	Escaped   int
	Presses   int
	Misses    int
}

// Validate checks the options.
func (o Options) Validate() error {
	var errs []error
	if o.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %v", o.Duration))
	}
	if o.PressEvery <= 0 {
		errs = append(errs, fmt.Errorf("press interval must be positive, got %v", o.PressEvery))
	}
	if o.PopRate < 0 || o.PopRate > 1 {
		errs = append(errs, fmt.Errorf("pop rate must be within [0, 1], got %v", o.PopRate))
	}
	return errors.Join(errs...)
}

// Run simulates Bubble Pop with cfg and returns the statistics.
func Run(cfg config.BubbleConfig, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("headless: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := sched.NewManual()
	stats := game.NewStats(nil)
	ctrl, err := game.New(cfg, clock,
		game.WithSurface(stats),
		game.WithLogger(logger),
		game.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		return Result{}, err
	}

	var res Result
	pointer := rand.New(rand.NewSource(seed + 1))

	var press func()
	press = func() {
		clock.Schedule(opts.PressEvery, press)
		if ctrl.Phase() != game.PhaseRunning {
			return
		}
		res.Presses++

		bubbles := ctrl.Bubbles()
		if len(bubbles) == 0 || pointer.Float64() >= opts.PopRate {
			res.Misses++
			return
		}
		b := bubbles[pointer.Intn(len(bubbles))]
		ctrl.Press(b.Center.X, b.Center.Y)
	}

	ctrl.Start()
	clock.Schedule(opts.PressEvery, press)

	step := cfg.UpdateInterval()
	for clock.Now() < opts.Duration {
		clock.Advance(min(step, opts.Duration-clock.Now()))

		if ctrl.Phase() == game.PhaseGameOver {
			res.BestScore = max(res.BestScore, ctrl.Score())
			logger.Info("session over", "at", clock.Now(), "score", ctrl.Score())
			if !opts.Restart {
				break
			}
			ctrl.Restart()
		}
	}
	ctrl.Stop()

	res.Elapsed = clock.Now()
	res.Score = ctrl.Score()
	res.BestScore = max(res.BestScore, res.Score)
	res.Lives = ctrl.Lives()
	res.Phase = ctrl.Phase()
	res.Sessions = stats.Sessions
	res.Spawned = stats.Spawned
	res.Popped = stats.Popped
	res.Escaped = stats.Escaped
	return res, nil
}
