package engine

// Threshold is the score that must be exceeded to leave level l: the sum of
// ThresholdStep*min(i, LevelCap) for i in 1..l. Steps grow linearly up to
// LevelCap and stay flat after.
func (p Params) Threshold(l int) int {
	total := 0
	for i := 1; i <= l; i++ {
		total += p.ThresholdStep * min(i, p.LevelCap)
	}
	return total
}

// award scores n cleared rows at the current level and advances the level
// while the score is past its threshold. Nothing happens for n == 0.
func (e *Engine) award(n int) {
	if n <= 0 {
		return
	}
	n = min(n, MaxClear)

	e.score += e.params.LineScores[n] * e.level
	e.lines += n
	count, _ := e.clears.Get(n)
	e.clears.Put(n, count+1)

	if !e.params.Progression {
		return
	}
	for e.score > e.params.Threshold(e.level) {
		if e.params.MaxLevel > 0 && e.level >= e.params.MaxLevel {
			break
		}
		e.level++
		e.fall = max(e.fall-e.params.FallDecrement, e.params.MinFallInterval)
	}
}
