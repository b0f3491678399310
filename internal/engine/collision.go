package engine

import "github.com/vovakirdan/tui-blocks/internal/rowstore"

// Colliding reports whether any block of p lies outside the board or on an
// occupied cell. Rows at or above the stored range are empty.
func (e *Engine) Colliding(p Moving) bool {
	for _, b := range e.Shape(p).Blocks {
		col := p.X + b.DX
		row := p.Y + b.DY

		if col < 0 || col >= BoardWidth {
			return true
		}
		if row <= Floor || row >= BoardHeight {
			return true
		}

		node := e.rowAt(p, b.DY)
		if node == rowstore.Nil {
			continue
		}
		if e.rows.Get(node, col) != 0 {
			return true
		}
	}
	return false
}

// rowAt returns the stored row dy above p's origin row, or Nil when that
// row is virtual. The walk is seeded from p's references so it never starts
// over from the bottom; a virtual origin is re-anchored at the top row.
func (e *Engine) rowAt(p Moving, dy int) rowstore.Handle {
	node, near := e.rows.OffsetFromLogical(p.Row, p.Near, dy, p.Y)
	if node == rowstore.Nil {
		return rowstore.Nil
	}
	// After a positive walk a Nil near means it ran off the top.
	if near == rowstore.Nil && (dy > 0 || p.Row == rowstore.Nil) {
		return rowstore.Nil
	}
	return node
}

// track derives the references for row y from a piece whose references
// are valid for its own Y.
func (e *Engine) track(from Moving, y int) (rowstore.Handle, rowstore.Handle) {
	if y < 0 || y >= e.rows.Len() {
		return rowstore.Nil, rowstore.Nil
	}

	delta := y - from.Y
	switch {
	case from.Row == rowstore.Nil:
		return e.rows.Locate(y)
	case delta == 0:
		return from.Row, from.Near
	case delta > 0:
		return e.rows.OffsetFrom(from.Row, from.Near, delta)
	default:
		// Walking down: the first step is Near itself.
		node, above := e.rows.OffsetFrom(from.Near, from.Row, -delta-1)
		return node, e.rows.Next(node, above)
	}
}

// anchor derives references for a fresh piece at row y.
func (e *Engine) anchor(y int) (rowstore.Handle, rowstore.Handle) {
	return e.track(Moving{Y: y}, y)
}
