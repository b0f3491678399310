package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Timing: BlocksTiming{
			FallInterval:    48,
			FallDecrement:   4,
			MinFallInterval: 1,
		},
		Scoring: BlocksScoring{
			LineScores:    []int{0, 100, 300, 500, 800},
			ThresholdStep: 1000,
			LevelCap:      10,
		},
		Play: BlocksPlay{
			StartLevel:  1,
			Progression: true,
			Randomizer:  "bag",
			Ghost:       true,
			Hold:        true,
		},
	}
}
