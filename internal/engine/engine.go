// Package engine implements the game state of the falling-block board: a
// single falling piece tracked against the settled rows of a rowstore.Store,
// collision-gated motion, locking, line clears and score/level progression.
//
// Rows are addressed by logical index, 0 at the bottom. Indices at or above
// the store's length are virtual: they read as empty and are only
// materialized when a piece locks into them.
package engine

import (
	"iter"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-blocks/internal/piece"
	"github.com/vovakirdan/tui-blocks/internal/rowstore"
)

const (
	// BoardWidth is the number of columns.
	BoardWidth = rowstore.Width
	// BoardHeight is the number of rows a piece may occupy.
	BoardHeight = 24
	// Headroom is the number of free rows above a freshly spawned piece.
	Headroom = 1
	// Floor is the logical index of the row below the bottom one.
	Floor = -1
	// MaxClear is the most rows a single lock can complete.
	MaxClear = 4
)

// Moving is the falling piece. (X, Y) is the bottom-left corner of its
// current shape. Row is the stored row at Y and Near the row below it; both
// are Nil when Y is virtual or below the floor.
type Moving struct {
	Type     piece.Type
	Rotation int
	X, Y     int
	Row      rowstore.Handle
	Near     rowstore.Handle
}

// Result reports what happened during a state transition.
type Result struct {
	Locked   bool
	Cleared  int
	GameOver bool
}

// Engine owns the row store and the falling piece.
type Engine struct {
	rows    *rowstore.Store
	catalog *piece.Catalog
	rand    piece.Randomizer
	params  Params

	cur      Moving
	held     piece.Type
	hasHeld  bool
	holdUsed bool

	score   int
	level   int
	lines   int
	fall    int
	gravity int
	over    bool

	// clears counts locks by the number of rows they completed.
	clears *intmap.Map[int, int]
}

// New creates an engine with an empty board and spawns the first piece.
func New(catalog *piece.Catalog, rand piece.Randomizer, params Params) *Engine {
	params = params.normalized()
	e := &Engine{
		rows:    rowstore.New(),
		catalog: catalog,
		rand:    rand,
		params:  params,
		level:   params.StartLevel,
		fall:    params.startInterval(),
		clears:  intmap.New[int, int](MaxClear + 1),
	}
	e.spawnNext()
	return e
}

// Current returns the falling piece.
func (e *Engine) Current() Moving {
	return e.cur
}

// Shape returns the current shape of p.
func (e *Engine) Shape(p Moving) piece.Shape {
	return e.catalog.Piece(p.Type).Shape(p.Rotation)
}

// Ghost returns where the falling piece would land.
func (e *Engine) Ghost() Moving {
	return e.Project(e.cur)
}

// NextType returns the type that spawns after the current piece locks.
func (e *Engine) NextType() piece.Type {
	return e.rand.Peek()
}

// HeldType returns the held type, if any.
func (e *Engine) HeldType() (piece.Type, bool) {
	return e.held, e.hasHeld
}

// CanHold reports whether Hold would succeed now.
func (e *Engine) CanHold() bool {
	return e.params.Hold && !e.holdUsed && !e.over
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *piece.Catalog {
	return e.catalog
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Lines returns the total rows cleared.
func (e *Engine) Lines() int { return e.lines }

// FallInterval returns the ticks between automatic down-steps.
func (e *Engine) FallInterval() int { return e.fall }

// GameOver reports whether a spawn has failed.
func (e *Engine) GameOver() bool { return e.over }

// Height returns the number of stored rows.
func (e *Engine) Height() int { return e.rows.Len() }

// Clears returns how many locks completed exactly n rows.
func (e *Engine) Clears(n int) int {
	v, _ := e.clears.Get(n)
	return v
}

// Rows yields a copy of every stored row, bottom to top.
func (e *Engine) Rows() iter.Seq2[int, rowstore.Row] {
	return func(yield func(int, rowstore.Row) bool) {
		for i, h := range e.rows.All() {
			if !yield(i, e.rows.Cells(h)) {
				return
			}
		}
	}
}

// Tick advances the gravity counter and drops the piece one row when it
// reaches the fall interval. A blocked drop locks the piece, clears rows,
// scores and spawns the next piece as one transition.
func (e *Engine) Tick() Result {
	if e.over {
		return Result{GameOver: true}
	}

	e.gravity++
	if e.gravity < e.fall {
		return Result{}
	}
	e.gravity = 0

	if e.Move(0, -1) {
		return Result{}
	}
	return e.settle()
}

// HardDrop drops the piece as far as it goes and locks it immediately.
func (e *Engine) HardDrop() Result {
	if e.over {
		return Result{GameOver: true}
	}
	e.cur = e.Project(e.cur)
	e.gravity = 0
	return e.settle()
}

// Hold swaps the falling piece with the held one, or stashes it and takes
// the next type when nothing is held. Allowed once per spawned piece.
func (e *Engine) Hold() bool {
	if !e.CanHold() {
		return false
	}

	t := e.cur.Type
	if e.hasHeld {
		e.spawn(e.held)
	} else {
		e.spawnNext()
	}
	e.held, e.hasHeld = t, true
	e.holdUsed = true
	e.gravity = 0
	return true
}

// settle locks the falling piece, clears and scores rows, then spawns.
func (e *Engine) settle() Result {
	start, near := e.Lock(e.cur)
	n := e.CheckAndClear(start, near, MaxClear)
	e.award(n)

	e.holdUsed = false
	e.spawnNext()

	return Result{Locked: true, Cleared: n, GameOver: e.over}
}

func (e *Engine) spawnNext() {
	e.spawn(e.rand.Next())
}

func (e *Engine) spawn(t piece.Type) {
	if !e.Spawn(t) {
		e.over = true
	}
}
