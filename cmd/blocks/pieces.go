package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/piece"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Print the piece catalog",
	Long: `Load the piece catalog and print every piece in all four rotation
states. Useful to check a custom catalog before playing with it.

Examples:
  blocks pieces
  blocks pieces --pieces ./pieces.yaml
  blocks pieces --pieces ./legacy-dir/`,
	Args: cobra.NoArgs,
	RunE: runPieces,
}

func runPieces(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("", 0)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog: %s\n\n", cat.Source())
	for t := range piece.Type(cat.Len()) {
		p := cat.Piece(t)
		fmt.Printf("%d %s (%s)\n", t, p.Name, p.Color())
		fmt.Print(formatRotations(p))
		fmt.Println()
	}
	return nil
}

// formatRotations lays the four rotation states of p side by side.
func formatRotations(p *piece.Piece) string {
	var cols [][]string
	height, width := 0, 0
	for r := range piece.Rotations + 1 {
		lines := p.Shape(r).Lines()
		cols = append(cols, lines)
		height = max(height, len(lines))
		for _, l := range lines {
			width = max(width, len(l))
		}
	}

	var b strings.Builder
	for y := range height {
		b.WriteString("  ")
		for _, lines := range cols {
			// Align shapes on their bottom row.
			line := ""
			if i := y - (height - len(lines)); i >= 0 {
				line = lines[i]
			}
			fmt.Fprintf(&b, "%-*s  ", width, line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
