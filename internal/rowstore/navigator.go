package rowstore

// OffsetFrom walks offset rows away from near, starting at node.
//
// A zero offset returns the input unchanged and a negative offset returns
// (Nil, Nil). When the sequence ends exactly on the final step the boundary
// row itself is returned with a Nil near; when it ends earlier the result is
// (Nil, Nil). A Nil near after a positive offset therefore always means "ran
// off the end".
func (s *Store) OffsetFrom(node, near Handle, offset int) (Handle, Handle) {
	if offset < 0 {
		return Nil, Nil
	}
	if offset == 0 {
		return node, near
	}
	if node == Nil {
		return Nil, Nil
	}

	for i := range offset {
		next := s.Next(node, near)
		if next == Nil {
			if i == offset-1 {
				return node, Nil
			}
			return Nil, Nil
		}
		near, node = node, next
	}

	return node, near
}

// OffsetFromLogical is OffsetFrom for anchors that may be virtual. When node
// and near are both Nil and start is at or above Len, the walk is re-anchored
// at the last row (arriving from the row below it) and offset is widened by
// the gap between start and the highest stored index.
func (s *Store) OffsetFromLogical(node, near Handle, offset, start int) (Handle, Handle) {
	if node == Nil && near == Nil && start >= s.count && s.count > 0 {
		top := s.count - 1
		offset += start - top
		node = s.last
		near = s.Next(s.last, Nil)
	}
	return s.OffsetFrom(node, near, offset)
}

// Locate returns the row stored at index and the row below it (Nil for the
// bottom row), walking from whichever end is closer. Out-of-range indices
// give (Nil, Nil).
func (s *Store) Locate(index int) (Handle, Handle) {
	if index < 0 || index >= s.count {
		return Nil, Nil
	}

	if index <= s.count/2 {
		return s.OffsetFrom(s.first, Nil, index)
	}

	row, above := s.OffsetFrom(s.last, Nil, s.count-1-index)
	return row, s.Next(row, above)
}
