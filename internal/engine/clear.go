package engine

import "github.com/vovakirdan/tui-blocks/internal/rowstore"

// Lock writes p's blocks into the store, appending empty rows first so
// that every block row exists. It returns the references of p's origin row,
// which is where a clear check should start.
func (e *Engine) Lock(p Moving) (rowstore.Handle, rowstore.Handle) {
	s := e.Shape(p)

	for e.rows.Len() < p.Y+s.Height {
		e.rows.Append()
	}
	if p.Row == rowstore.Nil {
		p.Row, p.Near = e.rows.Locate(p.Y)
	}

	for _, b := range s.Blocks {
		node := e.rowAt(p, b.DY)
		e.rows.Set(node, p.X+b.DX, uint8(b.Color))
	}
	return p.Row, p.Near
}

// CheckAndClear walks up to limit rows upward from start (reached from
// near) and removes each complete row as soon as it is found. After a
// removal the walk continues with the row that slid into that position.
// It returns the number of rows removed.
func (e *Engine) CheckAndClear(start, near rowstore.Handle, limit int) int {
	cleared := 0
	node, below := start, near

	for range limit {
		if node == rowstore.Nil {
			break
		}
		above := e.rows.Next(node, below)

		if e.rows.Full(node) {
			e.rows.Remove(node, below)
			cleared++
			node = above
			continue
		}
		below, node = node, above
	}
	return cleared
}
