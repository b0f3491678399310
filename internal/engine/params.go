package engine

// Params tunes timing and scoring. Zero numeric fields fall back to
// DefaultParams; the flags are taken as given.
type Params struct {
	StartLevel      int
	FallInterval    int // ticks between automatic down-steps at level 1
	FallDecrement   int // ticks removed per level gained
	MinFallInterval int
	LineScores      [MaxClear + 1]int
	ThresholdStep   int
	LevelCap        int
	MaxLevel        int  // 0 means unbounded
	Progression     bool // false keeps the start level for the whole game
	Hold            bool
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		StartLevel:      1,
		FallInterval:    48,
		FallDecrement:   4,
		MinFallInterval: 1,
		LineScores:      [MaxClear + 1]int{0, 100, 300, 500, 800},
		ThresholdStep:   1000,
		LevelCap:        10,
		Progression:     true,
		Hold:            true,
	}
}

func (p Params) normalized() Params {
	def := DefaultParams()
	if p.StartLevel < 1 {
		p.StartLevel = def.StartLevel
	}
	if p.FallInterval < 1 {
		p.FallInterval = def.FallInterval
	}
	if p.FallDecrement < 0 {
		p.FallDecrement = 0
	}
	if p.MinFallInterval < 1 {
		p.MinFallInterval = def.MinFallInterval
	}
	if p.LineScores == ([MaxClear + 1]int{}) {
		p.LineScores = def.LineScores
	}
	if p.ThresholdStep < 1 {
		p.ThresholdStep = def.ThresholdStep
	}
	if p.LevelCap < 1 {
		p.LevelCap = def.LevelCap
	}
	if p.MaxLevel > 0 && p.StartLevel > p.MaxLevel {
		p.StartLevel = p.MaxLevel
	}
	return p
}

// startInterval is the fall interval after the levels skipped by StartLevel.
func (p Params) startInterval() int {
	return max(p.FallInterval-p.FallDecrement*(p.StartLevel-1), p.MinFallInterval)
}
