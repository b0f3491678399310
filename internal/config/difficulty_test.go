package config

import "testing"

func TestApplyBlocksPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		startLevel  int
		progression bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 5, true},
		{DifficultyHard, 10, true},
		{DifficultyFixed, 1, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			ApplyBlocksPreset(&cfg, tc.preset)
			if cfg.Play.StartLevel != tc.startLevel {
				t.Errorf("StartLevel = %d, expected %d", cfg.Play.StartLevel, tc.startLevel)
			}
			if cfg.Play.Progression != tc.progression {
				t.Errorf("Progression = %v, expected %v", cfg.Play.Progression, tc.progression)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = (%q, %v), expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = (%q, %v)", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) expected error")
	}
}
