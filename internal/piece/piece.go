// Package piece holds the immutable piece catalog: shape definitions with
// their precomputed rotations, plus the randomizers that pick which type
// comes next. A catalog is built once before play and never mutated.
package piece

import (
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	// Count is the number of piece types in a catalog.
	Count = 7
	// Rotations is the number of rotated states besides Unrotated.
	Rotations = 3
	// MaxBlocks bounds both the block count and the extent of a shape.
	MaxBlocks = 4
	// Unrotated is the rotation state a piece spawns in.
	Unrotated = 0
)

// Type indexes a piece in the catalog. Type 0 is the line piece in the
// default catalog.
type Type int

// Block is one cell of a shape. DY grows upward, matching board rows.
type Block struct {
	DX, DY int
	Color  core.Color
}

// Shape is a normalized block set: min DX and min DY are both 0.
//
// ShiftX and ShiftY give the position of this shape's origin relative to the
// unrotated shape's origin when both are placed around the same pivot.
// Moving from rotation a to b adds b.Shift - a.Shift to the piece position.
type Shape struct {
	Blocks []Block
	Width  int
	Height int
	ShiftX int
	ShiftY int
}

// Piece is a catalog entry with all of its rotation states.
type Piece struct {
	Type   Type
	Name   string
	Even   bool
	shapes [Rotations + 1]Shape
}

// Shape returns the shape for a rotation state. Out-of-range states wrap.
func (p *Piece) Shape(rotation int) Shape {
	n := Rotations + 1
	return p.shapes[((rotation%n)+n)%n]
}

// Long reports whether the unrotated shape spans MaxBlocks cells, which
// widens the kick search when rotating.
func (p *Piece) Long() bool {
	s := p.shapes[Unrotated]
	return max(s.Width, s.Height) == MaxBlocks
}

// Color returns the colour of the first block, used for previews.
func (p *Piece) Color() core.Color {
	return p.shapes[Unrotated].Blocks[0].Color
}

// Lines draws the shape top row first using '#' for blocks and '.' for gaps.
func (s Shape) Lines() []string {
	grid := make([][]byte, s.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", s.Width))
	}
	for _, b := range s.Blocks {
		grid[s.Height-1-b.DY][b.DX] = '#'
	}

	lines := make([]string, s.Height)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}
