package formats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// LegacyFileName returns the file name of piece n in a legacy directory.
func LegacyFileName(n int) string {
	return fmt.Sprintf("piece_%d.txt", n)
}

// ParseLegacy parses the whitespace separated text format: the block count,
// then one "row col colour" triple per block, where colour is a numeric
// colour id. An optional trailing "row col even" triple sets the pivot.
func ParseLegacy(data []byte) (Piece, error) {
	fields := strings.Fields(string(data))
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Piece{}, fmt.Errorf("token %d: %w", i+1, err)
		}
		nums[i] = n
	}

	if len(nums) == 0 {
		return Piece{}, fmt.Errorf("missing block count")
	}
	count := nums[0]
	if count < 0 {
		return Piece{}, fmt.Errorf("negative block count %d", count)
	}

	rest := nums[1:]
	if count > len(rest)/3 {
		return Piece{}, fmt.Errorf("block count %d exceeds %d values", count, len(rest))
	}
	switch len(rest) {
	case 3 * count, 3*count + 3:
	default:
		return Piece{}, fmt.Errorf("expected %d block values, got %d", 3*count, len(rest))
	}

	p := Piece{Blocks: make([]Block, count)}
	for i := range count {
		row, col, color := rest[3*i], rest[3*i+1], rest[3*i+2]
		if color < 0 || color > int(core.ColorGray) {
			return Piece{}, fmt.Errorf("block %d: colour %d out of range", i, color)
		}
		p.Blocks[i] = Block{
			Cell:  Cell{Row: row, Col: col},
			Color: core.Color(color),
		}
	}

	if tail := rest[3*count:]; len(tail) == 3 {
		p.Pivot = &Cell{Row: tail[0], Col: tail[1]}
		p.Even = tail[2] != 0
	}

	return p, nil
}
