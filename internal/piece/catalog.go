package piece

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/piece/formats"
)

// ErrInvalid is wrapped by every catalog validation error.
var ErrInvalid = errors.New("invalid piece catalog")

// Catalog is an immutable set of Count pieces.
type Catalog struct {
	pieces []Piece
	source string
}

// Piece returns the catalog entry for t. It panics on an unknown type.
func (c *Catalog) Piece(t Type) *Piece {
	return &c.pieces[t]
}

// Len returns the number of piece types.
func (c *Catalog) Len() int {
	return len(c.pieces)
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Build validates raw definitions and precomputes every rotation.
func Build(defs []formats.Piece) (*Catalog, error) {
	if len(defs) != Count {
		return nil, fmt.Errorf("piece: expected %d pieces, got %d: %w", Count, len(defs), ErrInvalid)
	}

	c := &Catalog{pieces: make([]Piece, Count)}
	for i, def := range defs {
		p, err := buildPiece(Type(i), def)
		if err != nil {
			return nil, err
		}
		c.pieces[i] = p
	}
	return c, nil
}

func invalid(t Type, name, format string, args ...any) error {
	return fmt.Errorf("piece: %d (%s): %s: %w", t, name, fmt.Sprintf(format, args...), ErrInvalid)
}

func buildPiece(t Type, def formats.Piece) (Piece, error) {
	name := def.Name
	if name == "" {
		name = fmt.Sprintf("piece %d", t)
	}

	n := len(def.Blocks)
	if n == 0 {
		return Piece{}, invalid(t, name, "no blocks")
	}
	if n > MaxBlocks {
		return Piece{}, invalid(t, name, "%d blocks, at most %d allowed", n, MaxBlocks)
	}

	minRow, minCol := def.Blocks[0].Row, def.Blocks[0].Col
	maxRow, maxCol := minRow, minCol
	seen := make(map[formats.Cell]bool, n)
	for i, b := range def.Blocks {
		if b.Color == 0 {
			return Piece{}, invalid(t, name, "block %d has no colour", i)
		}
		if seen[b.Cell] {
			return Piece{}, invalid(t, name, "duplicate cell (%d, %d)", b.Row, b.Col)
		}
		seen[b.Cell] = true
		minRow, maxRow = min(minRow, b.Row), max(maxRow, b.Row)
		minCol, maxCol = min(minCol, b.Col), max(maxCol, b.Col)
	}

	width := maxCol - minCol + 1
	height := maxRow - minRow + 1
	if width > MaxBlocks || height > MaxBlocks {
		return Piece{}, invalid(t, name, "extent %dx%d exceeds %d", width, height, MaxBlocks)
	}

	// Pivot in doubled coordinates so half-cell centres stay integral.
	px2, pyDown2 := width, height
	if def.Pivot != nil {
		pr, pc := def.Pivot.Row-minRow, def.Pivot.Col-minCol
		if pr < 0 || pr >= height || pc < 0 || pc >= width {
			return Piece{}, invalid(t, name, "pivot (%d, %d) outside the shape", def.Pivot.Row, def.Pivot.Col)
		}
		even := 0
		if def.Even {
			even = 1
		}
		px2 = 2*pc + 1 + even
		pyDown2 = 2*pr + 1 + even
	}
	py2 := 2*height - pyDown2

	base := make([]Block, n)
	for i, b := range def.Blocks {
		base[i] = Block{
			DX:    b.Col - minCol,
			DY:    (height - 1) - (b.Row - minRow),
			Color: b.Color,
		}
	}

	p := Piece{Type: t, Name: name, Even: def.Even}
	p.shapes[Unrotated] = Shape{Blocks: base, Width: width, Height: height}
	for r := 1; r <= Rotations; r++ {
		p.shapes[r] = rotate(base, r, px2, py2)
	}
	return p, nil
}

// rotate turns blocks clockwise quarter times about the doubled pivot
// (px2, py2) and normalizes the result.
func rotate(blocks []Block, quarter, px2, py2 int) Shape {
	type point struct{ x, y int }

	pts := make([]point, len(blocks))
	for i, b := range blocks {
		pts[i] = point{2*b.DX + 1, 2*b.DY + 1}
	}
	for range quarter {
		for i, pt := range pts {
			pts[i] = point{px2 + (pt.y - py2), py2 - (pt.x - px2)}
		}
	}

	minX, minY := pts[0].x, pts[0].y
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		minX, maxX = min(minX, pt.x), max(maxX, pt.x)
		minY, maxY = min(minY, pt.y), max(maxY, pt.y)
	}

	out := make([]Block, len(blocks))
	for i, pt := range pts {
		out[i] = Block{
			DX:    (pt.x - minX) / 2,
			DY:    (pt.y - minY) / 2,
			Color: blocks[i].Color,
		}
	}

	return Shape{
		Blocks: out,
		Width:  (maxX-minX)/2 + 1,
		Height: (maxY-minY)/2 + 1,
		ShiftX: floorHalf(minX - 1),
		ShiftY: floorHalf(minY - 1),
	}
}

func floorHalf(v int) int {
	if v >= 0 {
		return v / 2
	}
	return -((-v + 1) / 2)
}
