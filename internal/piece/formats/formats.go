// Package formats provides the piece catalog file parsers.
// Each parser yields raw definitions; validation and rotation happen in
// the piece package.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Cell is a (row, col) position in a piece drawing. Rows count downward
// from the top of the drawing, the way shapes are usually written.
type Cell struct {
	Row int
	Col int
}

// Block is one cell of a piece definition with its colour.
type Block struct {
	Cell
	Color core.Color
}

// Piece is an unvalidated piece definition.
type Piece struct {
	Name   string
	Even   bool
	Pivot  *Cell // nil means the centre of the bounding box
	Blocks []Block
}

// FormatExtensions returns supported single-file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) ([]Piece, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt":
		p, err := ParseLegacy(data)
		if err != nil {
			return nil, err
		}
		return []Piece{p}, nil
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
