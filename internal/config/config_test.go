package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBlocksConfigIsValid(t *testing.T) {
	cfg := DefaultBlocksConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	def := DefaultBlocksConfig()
	if cfg.Timing != def.Timing {
		t.Errorf("Timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if cfg.Play != def.Play {
		t.Errorf("Play = %+v, expected %+v", cfg.Play, def.Play)
	}
	if cfg.Scoring.ThresholdStep != def.Scoring.ThresholdStep || len(cfg.Scoring.LineScores) != LineScoreCount {
		t.Errorf("Scoring = %+v, expected %+v", cfg.Scoring, def.Scoring)
	}
}

func TestLoadBlocksCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := "timing:\n  fall_interval: 30\nplay:\n  randomizer: uniform\n  ghost: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Timing.FallInterval != 30 {
		t.Errorf("FallInterval = %d, expected 30", cfg.Timing.FallInterval)
	}
	if cfg.Timing.FallDecrement != 4 {
		t.Errorf("FallDecrement = %d, expected default 4", cfg.Timing.FallDecrement)
	}
	if cfg.Play.Randomizer != "uniform" || cfg.Play.Ghost {
		t.Errorf("Play = %+v, expected uniform without ghost", cfg.Play)
	}
	if !cfg.Play.Hold {
		t.Error("Hold should keep its default")
	}
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlocks(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBlocks(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocks(bad); err == nil {
		t.Error("LoadBlocks(malformed) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("scoring:\n  line_scores: [0, 100]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocks(invalid); err == nil {
		t.Error("LoadBlocks(short line_scores) expected error")
	}
}

func TestLoadBlocksSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, "blocks.yaml"), []byte("play:\n  start_level: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Play.StartLevel != 3 {
		t.Errorf("StartLevel = %d, expected 3 from ./configs", cfg.Play.StartLevel)
	}

	user := filepath.Join(home, ".blocks", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, "blocks.yaml"), []byte("play:\n  start_level: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Play.StartLevel != 7 {
		t.Errorf("StartLevel = %d, expected 7 from the user config", cfg.Play.StartLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlocksConfig)
	}{
		{"zero fall interval", func(c *BlocksConfig) { c.Timing.FallInterval = 0 }},
		{"zero min interval", func(c *BlocksConfig) { c.Timing.MinFallInterval = 0 }},
		{"negative decrement", func(c *BlocksConfig) { c.Timing.FallDecrement = -1 }},
		{"negative line score", func(c *BlocksConfig) { c.Scoring.LineScores[2] = -5 }},
		{"zero threshold step", func(c *BlocksConfig) { c.Scoring.ThresholdStep = 0 }},
		{"start level zero", func(c *BlocksConfig) { c.Play.StartLevel = 0 }},
		{"unknown randomizer", func(c *BlocksConfig) { c.Play.Randomizer = "chaos" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}
