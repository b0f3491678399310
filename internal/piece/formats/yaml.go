package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"gopkg.in/yaml.v3"
)

// YAMLCatalog is the YAML structure of a catalog file.
type YAMLCatalog struct {
	Pieces []YAMLPiece `yaml:"pieces"`
}

// YAMLPiece is a single piece in a catalog file.
type YAMLPiece struct {
	Name   string      `yaml:"name"`
	Even   bool        `yaml:"even,omitempty"`
	Pivot  *YAMLCell   `yaml:"pivot,omitempty"`
	Blocks []YAMLBlock `yaml:"blocks"`
}

// YAMLCell is a (row, col) pair.
type YAMLCell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// YAMLBlock is a block with a named colour.
type YAMLBlock struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// ParseYAML parses a catalog file. Unknown colour names are an error.
func ParseYAML(data []byte) ([]Piece, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pieces := make([]Piece, 0, len(yc.Pieces))
	for i, yp := range yc.Pieces {
		p := Piece{
			Name:   yp.Name,
			Even:   yp.Even,
			Blocks: make([]Block, 0, len(yp.Blocks)),
		}
		if yp.Pivot != nil {
			p.Pivot = &Cell{Row: yp.Pivot.Row, Col: yp.Pivot.Col}
		}
		for _, yb := range yp.Blocks {
			color, ok := core.ParseColor(yb.Color)
			if !ok {
				return nil, fmt.Errorf("piece %d: unknown color %q", i, yb.Color)
			}
			p.Blocks = append(p.Blocks, Block{
				Cell:  Cell{Row: yb.Row, Col: yb.Col},
				Color: color,
			})
		}
		pieces = append(pieces, p)
	}

	return pieces, nil
}
