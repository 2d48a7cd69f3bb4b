package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultBubbleConfigValid(t *testing.T) {
	if err := DefaultBubbleConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultBubbleConfig()
	if cfg.SpawnInterval() != time.Second {
		t.Errorf("SpawnInterval() = %v, expected 1s", cfg.SpawnInterval())
	}
	if cfg.UpdateInterval() != 50*time.Millisecond {
		t.Errorf("UpdateInterval() = %v, expected 50ms", cfg.UpdateInterval())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BubbleConfig)
		field  string
	}{
		{"zero spawn interval", func(c *BubbleConfig) { c.SpawnIntervalMs = 0 }, "spawn_interval_ms"},
		{"negative update interval", func(c *BubbleConfig) { c.UpdateIntervalMs = -1 }, "update_interval_ms"},
		{"empty radius range", func(c *BubbleConfig) { c.RadiusRange = Range{Min: 40, Max: 20} }, "radius_range"},
		{"zero radius", func(c *BubbleConfig) { c.RadiusRange = Range{Min: 0, Max: 10} }, "radius_range.min"},
		{"empty x range", func(c *BubbleConfig) { c.XRange = Range{Min: 10, Max: 5} }, "x_range"},
		{"zero step", func(c *BubbleConfig) { c.StepPerTick = 0 }, "step_per_tick"},
		{"zero lives", func(c *BubbleConfig) { c.InitialLives = 0 }, "initial_lives"},
		{"negative reward", func(c *BubbleConfig) { c.RewardPerPop = -10 }, "reward_per_pop"},
		{"zero canvas", func(c *BubbleConfig) { c.Canvas.Height = 0 }, "canvas"},
		{"x range wider than int", func(c *BubbleConfig) { c.XRange = Range{Min: math.MinInt, Max: math.MaxInt} }, "x_range is too wide"},
		{"x range of MaxInt+1 values", func(c *BubbleConfig) { c.XRange = Range{Min: 0, Max: math.MaxInt} }, "x_range is too wide"},
		{"radius range wider than int", func(c *BubbleConfig) { c.RadiusRange = Range{Min: -5, Max: math.MaxInt} }, "radius_range is too wide"},
		{"spawn interval overflows duration", func(c *BubbleConfig) { c.SpawnIntervalMs = 1e13 }, "spawn_interval_ms"},
		{"update interval overflows duration", func(c *BubbleConfig) { c.UpdateIntervalMs = math.MaxInt }, "update_interval_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBubbleConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.SpawnIntervalMs = 0
	cfg.InitialLives = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "spawn_interval_ms") || !strings.Contains(msg, "initial_lives") {
		t.Errorf("expected both problems in %q", msg)
	}
}

func TestRangeTooWide(t *testing.T) {
	tests := []struct {
		r        Range
		expected bool
	}{
		{Range{Min: 50, Max: 550}, false},
		{Range{Min: 10, Max: 5}, false},
		{Range{Min: 1, Max: math.MaxInt}, false},
		{Range{Min: 0, Max: math.MaxInt}, true},
		{Range{Min: math.MinInt, Max: 0}, true},
		{Range{Min: math.MinInt, Max: math.MaxInt}, true},
	}

	for _, tc := range tests {
		if got := tc.r.TooWide(); got != tc.expected {
			t.Errorf("%+v.TooWide() = %v, expected %v", tc.r, got, tc.expected)
		}
	}
}

func TestLongestIntervalConvertsToDuration(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.SpawnIntervalMs = int(maxIntervalMs)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v for the longest interval", err)
	}
	if cfg.SpawnInterval() <= 0 {
		t.Errorf("SpawnInterval() = %v, expected a positive duration", cfg.SpawnInterval())
	}
}

func TestSingleValueRangeIsValid(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.RadiusRange = Range{Min: 30, Max: 30}
	cfg.XRange = Range{Min: 300, Max: 300}

	if err := cfg.Validate(); err != nil {
		t.Errorf("single-value ranges should be valid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	l := Loader{Environ: map[string]string{}}
	cfg, err := l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultBubbleConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultBubbleConfig() %+v", cfg, DefaultBubbleConfig())
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.InitialLives = 7

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := Loader{Environ: map[string]string{}}.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, expected %+v", loaded, cfg)
	}
}
