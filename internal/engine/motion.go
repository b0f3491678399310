package engine

import "github.com/vovakirdan/tui-blocks/internal/piece"

// kicks are the column nudges tried after a rotation, in order.
var (
	kicks     = []int{0, -1, 1}
	longKicks = []int{0, -1, -2, 1, 2}
)

// Spawn places a fresh piece of type t centred near the top of the board,
// Headroom rows below the ceiling so it can turn before it falls.
// It returns false, leaving the colliding piece as current, when the spawn
// position is blocked.
func (e *Engine) Spawn(t piece.Type) bool {
	s := e.catalog.Piece(t).Shape(piece.Unrotated)
	p := Moving{
		Type:     t,
		Rotation: piece.Unrotated,
		X:        (BoardWidth - s.Width) / 2,
		Y:        BoardHeight - Headroom - s.Height,
	}
	p.Row, p.Near = e.anchor(p.Y)

	e.cur = p
	e.gravity = 0
	return !e.Colliding(p)
}

// Move shifts the falling piece by (dx, dy) if the target is free.
func (e *Engine) Move(dx, dy int) bool {
	if e.over {
		return false
	}
	p, ok := e.shift(e.cur, dx, dy)
	if ok {
		e.cur = p
	}
	return ok
}

// shift returns p moved by (dx, dy), or p unchanged and false on collision.
func (e *Engine) shift(p Moving, dx, dy int) (Moving, bool) {
	c := p
	c.X += dx
	c.Y += dy
	c.Row, c.Near = e.track(p, c.Y)

	if e.Colliding(c) {
		return p, false
	}
	return c, true
}

// Rotate turns the falling piece to the next rotation state that fits.
// Each state is placed around the catalog pivot and then nudged left and
// right; the long piece gets a second nudge each way. When no state in a
// full cycle fits, the piece is left unchanged.
func (e *Engine) Rotate() bool {
	if e.over {
		return false
	}

	p := e.cur
	def := e.catalog.Piece(p.Type)
	from := def.Shape(p.Rotation)

	nudges := kicks
	if def.Long() {
		nudges = longKicks
	}

	for step := 1; step <= piece.Rotations; step++ {
		r := (p.Rotation + step) % (piece.Rotations + 1)
		to := def.Shape(r)

		base := p
		base.Rotation = r
		base.X = p.X - from.ShiftX + to.ShiftX
		base.Y = p.Y - from.ShiftY + to.ShiftY
		base.Row, base.Near = e.track(p, base.Y)

		for _, dx := range nudges {
			c := base
			c.X += dx
			if !e.Colliding(c) {
				e.cur = c
				return true
			}
		}
	}
	return false
}

// Fall drops the falling piece until it rests on something.
func (e *Engine) Fall() {
	if e.over {
		return
	}
	e.cur = e.Project(e.cur)
}

// Project returns p dropped as far as it can go without changing state.
func (e *Engine) Project(p Moving) Moving {
	for {
		next, ok := e.shift(p, 0, -1)
		if !ok {
			return p
		}
		p = next
	}
}
