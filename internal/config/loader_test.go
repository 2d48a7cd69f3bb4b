package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bubble.yaml", "initial_lives: 3\nradius_range:\n  min: 10\n  max: 15\n")

	cfg, err := Loader{Environ: map[string]string{}}.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.InitialLives != 3 {
		t.Errorf("InitialLives = %d, expected 3", cfg.InitialLives)
	}
	if cfg.RadiusRange != (Range{Min: 10, Max: 15}) {
		t.Errorf("RadiusRange = %+v, expected {10 15}", cfg.RadiusRange)
	}
	// Unlisted fields keep their defaults
	if cfg.RewardPerPop != 10 || cfg.SpawnIntervalMs != 1000 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Loader{Environ: map[string]string{}}.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing custom path should fail")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "initial_lives: [oops\n")

	_, err := Loader{Environ: map[string]string{}}.Load(path)
	if err == nil {
		t.Fatal("Load() with malformed YAML should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "initial_lives: 2\n")
	local := writeFile(t, dir, "local.yaml", "initial_lives: 4\n")

	t.Run("user wins over local", func(t *testing.T) {
		cfg, err := Loader{UserPath: user, LocalPath: local, Environ: map[string]string{}}.Load("")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.InitialLives != 2 {
			t.Errorf("InitialLives = %d, expected 2 from user config", cfg.InitialLives)
		}
	})

	t.Run("local used when user missing", func(t *testing.T) {
		cfg, err := Loader{UserPath: filepath.Join(dir, "missing.yaml"), LocalPath: local, Environ: map[string]string{}}.Load("")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.InitialLives != 4 {
			t.Errorf("InitialLives = %d, expected 4 from local config", cfg.InitialLives)
		}
	})

	t.Run("broken user file falls through", func(t *testing.T) {
		broken := writeFile(t, dir, "broken.yaml", "initial_lives: [\n")
		cfg, err := Loader{UserPath: broken, LocalPath: local, Environ: map[string]string{}}.Load("")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.InitialLives != 4 {
			t.Errorf("InitialLives = %d, expected 4 from local config", cfg.InitialLives)
		}
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	environ := map[string]string{
		"BUBBLEPOP_INITIAL_LIVES":     "9",
		"BUBBLEPOP_RADIUS_MIN":        "5",
		"BUBBLEPOP_RADIUS_MAX":        "6",
		"BUBBLEPOP_CANVAS_WIDTH":      "800",
		"BUBBLEPOP_SPAWN_INTERVAL_MS": "250",
		"UNRELATED":                   "x",
	}

	cfg, err := Loader{Environ: environ}.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.InitialLives != 9 {
		t.Errorf("InitialLives = %d, expected 9", cfg.InitialLives)
	}
	if cfg.RadiusRange != (Range{Min: 5, Max: 6}) {
		t.Errorf("RadiusRange = %+v, expected {5 6}", cfg.RadiusRange)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 400 {
		t.Errorf("Canvas = %+v, expected 800x400", cfg.Canvas)
	}
	if cfg.SpawnIntervalMs != 250 {
		t.Errorf("SpawnIntervalMs = %d, expected 250", cfg.SpawnIntervalMs)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := writeFile(t, dir, ".env", "BUBBLEPOP_REWARD_PER_POP=25\nBUBBLEPOP_INITIAL_LIVES=2\n")

	// Explicit environment wins over .env
	environ := map[string]string{"BUBBLEPOP_INITIAL_LIVES": "8"}

	cfg, err := Loader{DotEnv: dotenv, Environ: environ}.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.RewardPerPop != 25 {
		t.Errorf("RewardPerPop = %d, expected 25 from .env", cfg.RewardPerPop)
	}
	if cfg.InitialLives != 8 {
		t.Errorf("InitialLives = %d, expected 8 from environment", cfg.InitialLives)
	}
	if _, leaked := environ["BUBBLEPOP_REWARD_PER_POP"]; leaked {
		t.Error("Load() should not mutate the caller's environment map")
	}
}

func TestLoadInvalidEnvValue(t *testing.T) {
	_, err := Loader{Environ: map[string]string{"BUBBLEPOP_INITIAL_LIVES": "many"}}.Load("")
	if err == nil {
		t.Fatal("Load() with a non-numeric override should fail")
	}
}

func TestLoadFailsFastOnInvalidValues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "update_interval_ms: 0\n")

	_, err := Loader{Environ: map[string]string{}}.Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
