// Package rowstore holds the settled rows of the playfield in an XOR-linked
// sequence. Rows live in an arena and are addressed by integer handles; each
// row keeps a single link field equal to the XOR of its two neighbours'
// handles, so every walk has to know which neighbour it arrived from.
package rowstore

import "iter"

// Width is the number of cells in a row.
const Width = 10

// Handle addresses a row slot in the arena.
type Handle uint32

// Nil is the absent row. Slot 0 is reserved for it and never allocated, so a
// boundary row's link equals the handle of its only real neighbour.
const Nil Handle = 0

// Row is a fixed-width run of cells. 0 is empty, anything else is a colour id.
type Row [Width]uint8

type slot struct {
	link  Handle
	cells Row
	live  bool
}

// Store is the ordered sequence of settled rows, oldest (floor) first.
type Store struct {
	slots []slot
	free  []Handle
	first Handle
	last  Handle
	count int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		slots: make([]slot, 1, 32),
	}
}

// Len returns the number of stored rows.
func (s *Store) Len() int {
	return s.count
}

// First returns the bottom-most row, or Nil.
func (s *Store) First() Handle {
	return s.first
}

// Last returns the top-most row, or Nil.
func (s *Store) Last() Handle {
	return s.last
}

// Next decodes node's link against the neighbour it was reached from and
// returns the neighbour on the other side.
func (s *Store) Next(node, from Handle) Handle {
	if node == Nil {
		return Nil
	}
	return s.slots[node].link ^ from
}

// Append allocates an empty row and links it above the current last row.
// Running out of memory aborts the process inside the runtime; there is no
// recovery path.
func (s *Store) Append() Handle {
	h := s.alloc()

	prev := s.last
	s.slots[h].link = prev ^ Nil
	if prev != Nil {
		// prev.link was below^Nil; swap Nil for the new row.
		s.slots[prev].link ^= h
	} else {
		s.first = h
	}
	s.last = h
	s.count++

	return h
}

// Remove unlinks target, which was reached from the neighbour from (Nil when
// target is an end row reached from outside). Both neighbours are re-linked
// to skip target and its slot is returned to the free list.
func (s *Store) Remove(target, from Handle) {
	if target == Nil || !s.slots[target].live {
		panic("rowstore: remove of a row that is not stored")
	}

	other := s.slots[target].link ^ from

	if other != Nil {
		s.slots[other].link ^= target ^ from
	}
	if from != Nil {
		s.slots[from].link ^= target ^ other
	}

	// An end row has Nil on one side, so from^other is its surviving neighbour.
	if s.first == target {
		s.first = from ^ other
	}
	if s.last == target {
		s.last = from ^ other
	}

	s.count--
	s.release(target)
}

// Clear drops every row and resets the arena.
func (s *Store) Clear() {
	s.slots = s.slots[:1]
	s.free = s.free[:0]
	s.first = Nil
	s.last = Nil
	s.count = 0
}

// Cells returns a copy of the row's cells.
func (s *Store) Cells(h Handle) Row {
	if h == Nil {
		return Row{}
	}
	return s.slots[h].cells
}

// Get returns the cell at col, or 0 for Nil and out-of-range columns.
func (s *Store) Get(h Handle, col int) uint8 {
	if h == Nil || col < 0 || col >= Width {
		return 0
	}
	return s.slots[h].cells[col]
}

// Set writes a cell in place.
func (s *Store) Set(h Handle, col int, v uint8) {
	if h == Nil || col < 0 || col >= Width {
		return
	}
	s.slots[h].cells[col] = v
}

// Full reports whether every cell of the row is occupied.
func (s *Store) Full(h Handle) bool {
	if h == Nil {
		return false
	}
	for _, c := range s.slots[h].cells {
		if c == 0 {
			return false
		}
	}
	return true
}

// All yields the logical index and handle of each row, bottom to top.
func (s *Store) All() iter.Seq2[int, Handle] {
	return func(yield func(int, Handle) bool) {
		var near Handle
		node := s.first
		for i := 0; node != Nil; i++ {
			if !yield(i, node) {
				return
			}
			near, node = node, s.Next(node, near)
		}
	}
}

// alloc takes a zeroed slot from the free list or grows the arena.
func (s *Store) alloc() Handle {
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[h] = slot{live: true}
		return h
	}

	s.slots = append(s.slots, slot{live: true})
	return Handle(len(s.slots) - 1)
}

func (s *Store) release(h Handle) {
	s.slots[h] = slot{}
	s.free = append(s.free, h)
}
