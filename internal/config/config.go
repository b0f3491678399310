// Package config provides YAML-based configuration for the blocks game.
package config

import (
	"fmt"
	"slices"
)

// LineScoreCount is the number of entries in Scoring.LineScores: one per
// possible number of rows cleared by a single lock, starting at zero.
const LineScoreCount = 5

// BlocksConfig holds all configurable parameters for the blocks game.
type BlocksConfig struct {
	Timing  BlocksTiming  `yaml:"timing"`
	Scoring BlocksScoring `yaml:"scoring"`
	Play    BlocksPlay    `yaml:"play"`
}

// BlocksTiming defines gravity speed. Intervals are in ticks.
type BlocksTiming struct {
	FallInterval    int `yaml:"fall_interval"`     // Ticks per automatic down-step at level 1
	FallDecrement   int `yaml:"fall_decrement"`    // Ticks removed per level gained
	MinFallInterval int `yaml:"min_fall_interval"` // Fastest gravity
}

// BlocksScoring defines the score table and level thresholds.
type BlocksScoring struct {
	LineScores    []int `yaml:"line_scores"`    // Base points for 0..4 rows
	ThresholdStep int   `yaml:"threshold_step"` // Points per level step
	LevelCap      int   `yaml:"level_cap"`      // Level after which steps stop growing
	MaxLevel      int   `yaml:"max_level"`      // 0 = unbounded
}

// BlocksPlay defines gameplay switches.
type BlocksPlay struct {
	StartLevel  int    `yaml:"start_level"`
	Progression bool   `yaml:"progression"` // Level up as the score grows
	Randomizer  string `yaml:"randomizer"`  // "bag" or "uniform"
	Ghost       bool   `yaml:"ghost"`       // Show the landing position
	Hold        bool   `yaml:"hold"`        // Allow swapping with a held piece
	Pieces      string `yaml:"pieces"`      // Catalog file or directory; empty = built-in
}

// Validate checks that the configuration can drive a game.
func (c BlocksConfig) Validate() error {
	if c.Timing.FallInterval < 1 {
		return fmt.Errorf("config: timing.fall_interval must be positive, got %d", c.Timing.FallInterval)
	}
	if c.Timing.MinFallInterval < 1 {
		return fmt.Errorf("config: timing.min_fall_interval must be positive, got %d", c.Timing.MinFallInterval)
	}
	if c.Timing.FallDecrement < 0 {
		return fmt.Errorf("config: timing.fall_decrement must not be negative, got %d", c.Timing.FallDecrement)
	}
	if len(c.Scoring.LineScores) != LineScoreCount {
		return fmt.Errorf("config: scoring.line_scores needs %d entries, got %d", LineScoreCount, len(c.Scoring.LineScores))
	}
	if slices.ContainsFunc(c.Scoring.LineScores, func(v int) bool { return v < 0 }) {
		return fmt.Errorf("config: scoring.line_scores must not be negative")
	}
	if c.Scoring.ThresholdStep < 1 || c.Scoring.LevelCap < 1 {
		return fmt.Errorf("config: scoring.threshold_step and level_cap must be positive")
	}
	if c.Play.StartLevel < 1 {
		return fmt.Errorf("config: play.start_level must be at least 1, got %d", c.Play.StartLevel)
	}
	switch c.Play.Randomizer {
	case "", "bag", "uniform":
	default:
		return fmt.Errorf("config: unknown play.randomizer %q", c.Play.Randomizer)
	}
	return nil
}
