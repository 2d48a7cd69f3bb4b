package config

import (
	_ "embed"
)

//go:embed defaults/bubblepop.yaml
var defaultBubbleYAML []byte

// DefaultBubbleConfig returns the built-in Bubble Pop configuration.
func DefaultBubbleConfig() BubbleConfig {
	return BubbleConfig{
		SpawnIntervalMs:  1000,
		UpdateIntervalMs: 50,
		RadiusRange:      Range{Min: 20, Max: 40},
		XRange:           Range{Min: 50, Max: 550},
		StepPerTick:      5,
		InitialLives:     5,
		RewardPerPop:     10,
		Canvas:           Canvas{Width: 600, Height: 400},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBubbleYAML
}
