package headless

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/game"
)

func TestRunWithoutPopsEndsInGameOver(t *testing.T) {
	cfg := config.DefaultBubbleConfig()
	opts := DefaultOptions()
	opts.PopRate = 0
	opts.Seed = 1

	res, err := Run(cfg, opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Phase != game.PhaseGameOver {
		t.Errorf("Phase = %v, expected game over", res.Phase)
	}
	if res.Escaped != cfg.InitialLives || res.Lives != 0 || res.Score != 0 {
		t.Errorf("result = %+v, expected %d escapes, 0 lives, 0 score", res, cfg.InitialLives)
	}
	if res.Elapsed >= opts.Duration {
		t.Errorf("Elapsed = %v, expected the run to stop at game over", res.Elapsed)
	}
	if res.Presses != res.Misses {
		t.Errorf("presses=%d misses=%d, expected every press to miss", res.Presses, res.Misses)
	}
}

func TestRunPerfectPlayerNeverLoses(t *testing.T) {
	cfg := config.DefaultBubbleConfig()
	opts := Options{
		Duration:   30 * time.Second,
		PressEvery: 100 * time.Millisecond,
		PopRate:    1,
		Seed:       7,
	}

	res, err := Run(cfg, opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Phase != game.PhaseRunning || res.Lives != cfg.InitialLives {
		t.Errorf("result = %+v, expected a running session with full lives", res)
	}
	if res.Elapsed != opts.Duration {
		t.Errorf("Elapsed = %v, expected %v", res.Elapsed, opts.Duration)
	}
	if res.Escaped != 0 {
		t.Errorf("Escaped = %d, expected 0", res.Escaped)
	}
	if res.Score != res.Popped*cfg.RewardPerPop {
		t.Errorf("Score = %d with %d pops", res.Score, res.Popped)
	}
	if res.Spawned < 30 || res.Popped < res.Spawned-1 {
		t.Errorf("spawned=%d popped=%d, expected nearly every bubble popped", res.Spawned, res.Popped)
	}
}

func TestRunRestartsAfterGameOver(t *testing.T) {
	opts := DefaultOptions()
	opts.PopRate = 0
	opts.Seed = 3
	opts.Restart = true

	res, err := Run(config.DefaultBubbleConfig(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Sessions < 2 {
		t.Errorf("Sessions = %d, expected restarts within a minute", res.Sessions)
	}
	if res.Elapsed != opts.Duration {
		t.Errorf("Elapsed = %v, expected the full duration", res.Elapsed)
	}
}

func TestRunIsReproducible(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 99

	a, err := Run(config.DefaultBubbleConfig(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(config.DefaultBubbleConfig(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		field  string
	}{
		{"zero duration", func(o *Options) { o.Duration = 0 }, "duration"},
		{"zero press interval", func(o *Options) { o.PressEvery = 0 }, "press interval"},
		{"pop rate above one", func(o *Options) { o.PopRate = 1.5 }, "pop rate"},
		{"negative pop rate", func(o *Options) { o.PopRate = -0.1 }, "pop rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)

			_, err := Run(config.DefaultBubbleConfig(), opts)
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Run() error = %v, expected mention of %q", err, tc.field)
			}
		})
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBubbleConfig()
	cfg.InitialLives = 0

	if _, err := Run(cfg, DefaultOptions()); err == nil {
		t.Error("Run() should fail on invalid config")
	}
}
