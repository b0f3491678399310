package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/piece"
)

func TestFormatRotationsBottomAligned(t *testing.T) {
	cat, err := piece.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	var long *piece.Piece
	for i := range piece.Type(cat.Len()) {
		if p := cat.Piece(i); p.Long() {
			long = p
		}
	}
	if long == nil {
		t.Fatal("Expected a long piece in the default catalog")
	}

	lines := strings.Split(strings.TrimRight(formatRotations(long), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines for the upright states, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	// The flat state only shows on the bottom line.
	if !strings.HasPrefix(lines[3], "  ####") {
		t.Errorf("Expected flat shape on the bottom line, got %q", lines[3])
	}
	if strings.Contains(lines[0][:6], "#") {
		t.Errorf("Expected blank flat column above its bottom row, got %q", lines[0])
	}
}
