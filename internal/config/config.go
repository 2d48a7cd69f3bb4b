// Package config provides YAML-based configuration loading and validation
// for the Bubble Pop game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BubbleConfig contains all tunables of a Bubble Pop session.
// Zero values are not usable; start from DefaultBubbleConfig or Load.
type BubbleConfig struct {
	SpawnIntervalMs  int    `yaml:"spawn_interval_ms" env:"SPAWN_INTERVAL_MS"`
	UpdateIntervalMs int    `yaml:"update_interval_ms" env:"UPDATE_INTERVAL_MS"`
	RadiusRange      Range  `yaml:"radius_range" envPrefix:"RADIUS_"`
	XRange           Range  `yaml:"x_range" envPrefix:"X_"`
	StepPerTick      int    `yaml:"step_per_tick" env:"STEP_PER_TICK"` // Upward distance per update tick
	InitialLives     int    `yaml:"initial_lives" env:"INITIAL_LIVES"`
	RewardPerPop     int    `yaml:"reward_per_pop" env:"REWARD_PER_POP"`
	Canvas           Canvas `yaml:"canvas" envPrefix:"CANVAS_"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min" env:"MIN"`
	Max int `yaml:"max" env:"MAX"`
}

// Empty reports whether the range contains no values.
func (r Range) Empty() bool {
	return r.Max < r.Min
}

// TooWide reports whether the number of values in the range does not fit in an int.
func (r Range) TooWide() bool {
	if r.Empty() {
		return false
	}
	width := r.Max - r.Min
	return width < 0 || width == math.MaxInt
}

// maxIntervalMs is the longest interval that still converts to a time.Duration.
const maxIntervalMs = math.MaxInt64 / int64(time.Millisecond)

// Canvas is the play surface size in canvas units.
// Bubbles spawn at y = Height and escape above y = 0.
type Canvas struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// SpawnInterval returns the spawn cadence as a duration.
func (c BubbleConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}

// UpdateInterval returns the update cadence as a duration.
func (c BubbleConfig) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateIntervalMs) * time.Millisecond
}

// Validate checks every field and returns all problems at once.
// Each problem wraps ErrInvalidConfig.
func (c BubbleConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.SpawnIntervalMs <= 0 || int64(c.SpawnIntervalMs) > maxIntervalMs {
		bad("spawn_interval_ms must be within [1, %d], got %d", maxIntervalMs, c.SpawnIntervalMs)
	}
	if c.UpdateIntervalMs <= 0 || int64(c.UpdateIntervalMs) > maxIntervalMs {
		bad("update_interval_ms must be within [1, %d], got %d", maxIntervalMs, c.UpdateIntervalMs)
	}
	if c.RadiusRange.Empty() {
		bad("radius_range is empty [%d, %d]", c.RadiusRange.Min, c.RadiusRange.Max)
	}
	if c.RadiusRange.TooWide() {
		bad("radius_range is too wide [%d, %d]", c.RadiusRange.Min, c.RadiusRange.Max)
	}
	if c.RadiusRange.Min <= 0 {
		bad("radius_range.min must be positive, got %d", c.RadiusRange.Min)
	}
	if c.XRange.Empty() {
		bad("x_range is empty [%d, %d]", c.XRange.Min, c.XRange.Max)
	}
	if c.XRange.TooWide() {
		bad("x_range is too wide [%d, %d]", c.XRange.Min, c.XRange.Max)
	}
	if c.StepPerTick <= 0 {
		bad("step_per_tick must be positive, got %d", c.StepPerTick)
	}
	if c.InitialLives <= 0 {
		bad("initial_lives must be positive, got %d", c.InitialLives)
	}
	if c.RewardPerPop < 0 {
		bad("reward_per_pop must not be negative, got %d", c.RewardPerPop)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		bad("canvas must have positive size, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}

	return errors.Join(errs...)
}
