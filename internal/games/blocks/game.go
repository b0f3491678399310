// Package blocks implements the falling-block puzzle game on top of the
// engine package: input vocabulary, gravity ticks, pause and resize handling,
// and rendering into a core.Screen.
package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/piece"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

const (
	// ID is the registry identifier of the game.
	ID = "blocks"
	// Name is the display title.
	Name = "Blocks"
)

// Options configure new games. A nil Catalog means the built-in one and a
// zero Config means config.DefaultBlocksConfig.
type Options struct {
	Config  config.BlocksConfig
	Catalog *piece.Catalog
}

// configured is used by the registry factory; set it with Configure before
// creating the game through the registry.
var configured Options

// Configure sets the options used by games created through the registry.
// Options New would reject are returned as an error and not stored.
func Configure(opts Options) error {
	if _, err := New(opts); err != nil {
		return err
	}
	configured = opts
	return nil
}

func init() {
	registry.Register(ID, Name, func() registry.Game {
		g, err := New(configured)
		if err != nil {
			panic(err) // Configure only stores options New accepts
		}
		return g
	})
}

// Game is a single-player blocks session.
type Game struct {
	cfg     config.BlocksConfig
	catalog *piece.Catalog
	newRand func(seed int64) piece.Randomizer
	eng     *engine.Engine

	seed int64
	tick uint64

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int

	lastCleared int
}

// New creates a game. Reset must be called before Step.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg.Scoring.LineScores == nil {
		cfg = config.DefaultBlocksConfig()
	}

	cat := opts.Catalog
	if cat == nil {
		var err error
		cat, err = piece.Default()
		if err != nil {
			return nil, err
		}
	}

	newRand, err := piece.RandomizerFor(cfg.Play.Randomizer)
	if err != nil {
		return nil, fmt.Errorf("blocks: %w", err)
	}

	return &Game{cfg: cfg, catalog: cat, newRand: newRand}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Name
}

// Reset starts a new game with an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tick = 0
	g.paused = false
	g.lastCleared = 0

	g.eng = engine.New(g.catalog, g.newRand(cfg.Seed), Params(g.cfg))

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Params converts a configuration into engine parameters.
func Params(cfg config.BlocksConfig) engine.Params {
	p := engine.Params{
		StartLevel:      cfg.Play.StartLevel,
		FallInterval:    cfg.Timing.FallInterval,
		FallDecrement:   cfg.Timing.FallDecrement,
		MinFallInterval: cfg.Timing.MinFallInterval,
		ThresholdStep:   cfg.Scoring.ThresholdStep,
		LevelCap:        cfg.Scoring.LevelCap,
		MaxLevel:        cfg.Scoring.MaxLevel,
		Progression:     cfg.Play.Progression,
		Hold:            cfg.Play.Hold,
	}
	copy(p.LineScores[:], cfg.Scoring.LineScores)
	return p
}

// Resize records the terminal size. A window below the minimum pauses the
// game until it grows again; the board is never touched.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < MinWidth || height < MinHeight
}

// Step applies the queued actions in order, then advances gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var result core.StepResult

	if g.eng.GameOver() {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				Seed:    g.seed + 1,
				ScreenW: g.screenW,
				ScreenH: g.screenH,
			})
		}
		result.State = g.State()
		return result
	}

	for _, a := range in.Actions() {
		if a == core.ActionPause && !g.tooSmall {
			g.paused = !g.paused
		}
	}
	if g.paused || g.tooSmall {
		result.State = g.State()
		return result
	}

	g.tick++
	for _, a := range in.Actions() {
		g.collect(&result, g.apply(a))
		if g.eng.GameOver() {
			break
		}
	}
	if !g.eng.GameOver() {
		g.collect(&result, g.eng.Tick())
	}

	if result.Cleared > 0 {
		g.lastCleared = result.Cleared
	}
	result.State = g.State()
	return result
}

func (g *Game) apply(a core.Action) engine.Result {
	switch a {
	case core.ActionLeft:
		g.eng.Move(-1, 0)
	case core.ActionRight:
		g.eng.Move(1, 0)
	case core.ActionSoftDrop:
		g.eng.Move(0, -1)
	case core.ActionRotate:
		g.eng.Rotate()
	case core.ActionHardDrop:
		return g.eng.HardDrop()
	case core.ActionHold:
		g.eng.Hold()
	}
	return engine.Result{}
}

func (g *Game) collect(dst *core.StepResult, r engine.Result) {
	dst.Locked = dst.Locked || r.Locked
	dst.Cleared += r.Cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		Level:    g.eng.Level(),
		Lines:    g.eng.Lines(),
		GameOver: g.eng.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine for read-only inspection.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
