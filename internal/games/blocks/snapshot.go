package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Score        int
	Level        int
	Lines        int
	Height       int
	Piece        string
	Rotation     int
	X, Y         int
	Next         string
	FallInterval int
	LastCleared  int
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.eng.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	cur := g.eng.Current()
	cat := g.eng.Catalog()
	return Snapshot{
		Tick:         g.tick,
		Score:        g.eng.Score(),
		Level:        g.eng.Level(),
		Lines:        g.eng.Lines(),
		Height:       g.eng.Height(),
		Piece:        cat.Piece(cur.Type).Name,
		Rotation:     cur.Rotation,
		X:            cur.X,
		Y:            cur.Y,
		Next:         cat.Piece(g.eng.NextType()).Name,
		FallInterval: g.eng.FallInterval(),
		LastCleared:  g.lastCleared,
		State:        state,
	}
}
