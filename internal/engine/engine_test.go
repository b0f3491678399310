package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/piece"
	"github.com/vovakirdan/tui-blocks/internal/rowstore"
)

const (
	linePiece   piece.Type = 0
	squarePiece piece.Type = 1
	tPiece      piece.Type = 2
	sPiece      piece.Type = 3
)

func newTestEngine(t *testing.T, params Params, types ...piece.Type) *Engine {
	t.Helper()
	cat, err := piece.Default()
	require.NoError(t, err)
	return New(cat, piece.NewSequence(types...), params)
}

// fillRow marks cols of row y, appending rows as needed.
func fillRow(e *Engine, y int, cols ...int) {
	for e.rows.Len() <= y {
		e.rows.Append()
	}
	h, _ := e.rows.Locate(y)
	for _, c := range cols {
		e.rows.Set(h, c, 9)
	}
}

func allColumnsBut(skip ...int) []int {
	var cols []int
	for c := range BoardWidth {
		skipped := false
		for _, s := range skip {
			skipped = skipped || s == c
		}
		if !skipped {
			cols = append(cols, c)
		}
	}
	return cols
}

func place(e *Engine, p Moving) Moving {
	p.Row, p.Near = e.anchor(p.Y)
	return p
}

func TestSpawnPosition(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), linePiece, tPiece)

	cur := e.Current()
	assert.Equal(t, linePiece, cur.Type)
	assert.Equal(t, piece.Unrotated, cur.Rotation)
	assert.Equal(t, 3, cur.X)
	assert.Equal(t, BoardHeight-2, cur.Y)
	assert.Equal(t, rowstore.Nil, cur.Row, "spawn row is virtual")
	assert.False(t, e.GameOver())

	require.True(t, e.Spawn(tPiece))
	cur = e.Current()
	assert.Equal(t, 3, cur.X)
	assert.Equal(t, BoardHeight-3, cur.Y)
}

func TestRotateRightAfterSpawn(t *testing.T) {
	for i := range piece.Count {
		tp := piece.Type(i)
		e := newTestEngine(t, DefaultParams(), tp)
		spawned := e.Current()

		require.True(t, e.Rotate(), "type %d", i)
		cur := e.Current()
		assert.Equal(t, 1, cur.Rotation, "type %d turns to its first state", i)
		assert.False(t, e.Colliding(cur))

		top := 0
		for _, b := range e.Shape(cur).Blocks {
			top = max(top, cur.Y+b.DY)
		}
		assert.Less(t, top, BoardHeight, "type %d", i)
		assert.Equal(t, spawned.Type, cur.Type)
	}
}

func TestRotateLongPieceAtSpawnStaysInPlace(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), linePiece)

	require.True(t, e.Rotate())
	cur := e.Current()
	require.Equal(t, 1, cur.Rotation)
	assert.Equal(t, 5, cur.X)
	assert.Equal(t, BoardHeight-4, cur.Y, "upright bar spans the rows around the pivot")

	require.True(t, e.Rotate())
	assert.Equal(t, 2, e.Current().Rotation)
}

func TestCollisionBoundaries(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), squarePiece)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"resting on the floor", 0, 0, false},
		{"below the floor", 0, Floor, true},
		{"left wall", -1, 5, true},
		{"right wall", BoardWidth - 1, 5, true},
		{"flush right", BoardWidth - 2, 5, false},
		{"touching the ceiling", 4, BoardHeight - 2, false},
		{"through the ceiling", 4, BoardHeight - 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := place(e, Moving{Type: squarePiece, X: tc.x, Y: tc.y})
			assert.Equal(t, tc.expected, e.Colliding(p))
		})
	}
}

func TestCollisionWithStoredCells(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), squarePiece)
	fillRow(e, 0, 0, 1)
	fillRow(e, 2, 5)

	assert.True(t, e.Colliding(place(e, Moving{Type: squarePiece, X: 0, Y: 0})))
	assert.False(t, e.Colliding(place(e, Moving{Type: squarePiece, X: 0, Y: 1})))
	assert.True(t, e.Colliding(place(e, Moving{Type: squarePiece, X: 4, Y: 1})), "upper block hits row 2")
	assert.False(t, e.Colliding(place(e, Moving{Type: squarePiece, X: 6, Y: 1})))
}

func TestVirtualRowsAreTransparent(t *testing.T) {
	short := newTestEngine(t, DefaultParams(), linePiece)
	fillRow(short, 0, 0, 1, 2, 7)
	fillRow(short, 1, 3, 4)

	tall := newTestEngine(t, DefaultParams(), linePiece)
	fillRow(tall, 0, 0, 1, 2, 7)
	fillRow(tall, 1, 3, 4)
	fillRow(tall, 11)
	require.Equal(t, 12, tall.rows.Len())

	for tp := range piece.Type(piece.Count) {
		for rot := piece.Unrotated; rot <= piece.Rotations; rot++ {
			for y := Floor; y <= BoardHeight; y++ {
				for x := -1; x <= BoardWidth; x++ {
					p := Moving{Type: tp, Rotation: rot, X: x, Y: y}
					want := tall.Colliding(place(tall, p))
					got := short.Colliding(place(short, p))
					require.Equal(t, want, got, "type %d rot %d at (%d, %d)", tp, rot, x, y)
				}
			}
		}
	}
}

func TestMoveTracksReferences(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), linePiece)
	for y := range 6 {
		fillRow(e, y, 0)
	}

	for e.Move(0, -1) {
		cur := e.Current()
		wantRow, wantNear := e.rows.Locate(cur.Y)
		require.Equal(t, wantRow, cur.Row, "row at Y=%d", cur.Y)
		require.Equal(t, wantNear, cur.Near, "near at Y=%d", cur.Y)
	}
	assert.Equal(t, 0, e.Current().Y)

	for from := range 6 {
		p := place(e, Moving{Y: from})
		for to := -1; to <= 7; to++ {
			row, near := e.track(p, to)
			wantRow, wantNear := e.rows.Locate(to)
			assert.Equal(t, wantRow, row, "track %d -> %d", from, to)
			assert.Equal(t, wantNear, near, "track %d -> %d", from, to)
		}
	}
}

func TestFallAndLockAppendsRows(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), squarePiece)

	e.Fall()
	cur := e.Current()
	require.Equal(t, 0, cur.Y)
	assert.Equal(t, cur, e.Ghost())

	res := e.HardDrop()
	assert.True(t, res.Locked)
	assert.Zero(t, res.Cleared)
	assert.Equal(t, 2, e.Height())

	for i, row := range e.Rows() {
		assert.Equal(t, uint8(core.ColorYellow), row[4], "row %d", i)
		assert.Equal(t, uint8(core.ColorYellow), row[5], "row %d", i)
		assert.Zero(t, row[3], "row %d", i)
	}
}

func TestGhostDoesNotMovePiece(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), tPiece)
	fillRow(e, 3, 4)

	before := e.Current()
	ghost := e.Ghost()

	assert.Equal(t, before, e.Current())
	assert.Equal(t, 4, ghost.Y, "T rests its stem on row 3")
}

func TestRowsReturnsCopies(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), linePiece)
	fillRow(e, 0, 2)

	for _, row := range e.Rows() {
		row[2] = 0
	}
	h, _ := e.rows.Locate(0)
	assert.Equal(t, uint8(9), e.rows.Get(h, 2))
}

func TestHardDropRestsOnStack(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), linePiece)
	fillRow(e, 0, 3)
	fillRow(e, 4, 9)

	e.HardDrop()

	assert.Equal(t, 5, e.Height(), "no rows appended below the top")
	row, _ := e.rows.Locate(1)
	for c := 3; c <= 6; c++ {
		assert.Equal(t, uint8(core.ColorCyan), e.rows.Get(row, c))
	}
}

func TestTickGravity(t *testing.T) {
	params := DefaultParams()
	params.FallInterval = 3
	e := newTestEngine(t, params, squarePiece)
	startY := e.Current().Y

	assert.Equal(t, Result{}, e.Tick())
	assert.Equal(t, Result{}, e.Tick())
	assert.Equal(t, startY, e.Current().Y)
	assert.Equal(t, Result{}, e.Tick())
	assert.Equal(t, startY-1, e.Current().Y)

	e.Fall()
	var res Result
	for range 3 {
		res = e.Tick()
	}
	assert.True(t, res.Locked)
	assert.Equal(t, 2, e.Height())
	assert.Equal(t, startY, e.Current().Y, "next piece spawned")
}

func TestHold(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), linePiece, squarePiece, tPiece, sPiece)

	assert.Equal(t, squarePiece, e.NextType())
	_, held := e.HeldType()
	assert.False(t, held)

	require.True(t, e.Hold())
	assert.Equal(t, squarePiece, e.Current().Type)
	ht, held := e.HeldType()
	assert.True(t, held)
	assert.Equal(t, linePiece, ht)
	assert.False(t, e.Hold(), "only once per piece")

	e.HardDrop()
	assert.Equal(t, tPiece, e.Current().Type)
	require.True(t, e.Hold())
	assert.Equal(t, linePiece, e.Current().Type)
	ht, _ = e.HeldType()
	assert.Equal(t, tPiece, ht)
	assert.Equal(t, BoardHeight-2, e.Current().Y, "swapped piece respawns at the top")
}

func TestHoldDisabled(t *testing.T) {
	params := DefaultParams()
	params.Hold = false
	e := newTestEngine(t, params, linePiece, squarePiece)

	assert.False(t, e.CanHold())
	assert.False(t, e.Hold())
	assert.Equal(t, linePiece, e.Current().Type)
}

func TestSpawnFailureEndsGame(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), linePiece)
	for y := range BoardHeight {
		fillRow(e, y, 4)
	}

	assert.False(t, e.Spawn(linePiece))
	e.spawn(linePiece)
	assert.True(t, e.GameOver())

	assert.Equal(t, Result{GameOver: true}, e.Tick())
	assert.Equal(t, Result{GameOver: true}, e.HardDrop())
	assert.False(t, e.Move(-1, 0))
	assert.False(t, e.Rotate())
	assert.False(t, e.Hold())
}

func TestLockAtSpawnEndsGame(t *testing.T) {
	e := newTestEngine(t, DefaultParams(), squarePiece)
	for y := range BoardHeight - 3 {
		fillRow(e, y, 4)
	}

	res := e.HardDrop()
	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.Equal(t, BoardHeight-1, e.Height(), "the headroom row stays empty")
}
