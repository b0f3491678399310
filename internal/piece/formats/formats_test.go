package formats

import (
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestParseLegacy(t *testing.T) {
	p, err := ParseLegacy([]byte("2\n0 0 6\n0 1 6\n"))
	if err != nil {
		t.Fatalf("ParseLegacy() error = %v", err)
	}
	if len(p.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, expected 2", len(p.Blocks))
	}
	if p.Blocks[1].Col != 1 || p.Blocks[1].Color != core.ColorCyan {
		t.Errorf("Blocks[1] = %+v, expected col 1 cyan", p.Blocks[1])
	}
	if p.Pivot != nil {
		t.Errorf("Pivot = %+v, expected nil", p.Pivot)
	}
}

func TestParseLegacyPivot(t *testing.T) {
	p, err := ParseLegacy([]byte("1 0 0 3   0 0 1"))
	if err != nil {
		t.Fatalf("ParseLegacy() error = %v", err)
	}
	if p.Pivot == nil || *p.Pivot != (Cell{Row: 0, Col: 0}) || !p.Even {
		t.Errorf("Pivot = %+v, Even = %v, expected (0, 0) even", p.Pivot, p.Even)
	}
}

func TestParseLegacyErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"not a number", "2 0 0 a"},
		{"short", "2\n0 0 1\n"},
		{"trailing garbage", "1\n0 0 1\n9\n"},
		{"negative count", "-1"},
		{"colour out of range", "1\n0 0 99\n"},
		{"count overflows", "6148914691236517206 1 2"},
		{"count exceeds values", "4 0 0 1 0 1 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseLegacy([]byte(tc.data)); err == nil {
				t.Errorf("ParseLegacy(%q) expected error", tc.data)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
pieces:
  - name: bar
    even: true
    pivot: {row: 0, col: 0}
    blocks:
      - {row: 0, col: 0, color: Purple}
      - {row: 0, col: 1, color: red}
`)
	pieces, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if len(pieces) != 1 {
		t.Fatalf("len(pieces) = %d, expected 1", len(pieces))
	}
	p := pieces[0]
	if p.Name != "bar" || !p.Even || p.Pivot == nil {
		t.Errorf("piece = %+v", p)
	}
	if p.Blocks[0].Color != core.ColorMagenta {
		t.Errorf("Blocks[0].Color = %v, expected magenta", p.Blocks[0].Color)
	}
}

func TestParseRoutesByExtension(t *testing.T) {
	if _, err := Parse([]byte("1 0 0 1"), ".txt"); err != nil {
		t.Errorf("Parse(.txt) error = %v", err)
	}
	if _, err := Parse([]byte("pieces: []"), ".yml"); err != nil {
		t.Errorf("Parse(.yml) error = %v", err)
	}
	if _, err := Parse(nil, ".json"); err == nil {
		t.Error("Parse(.json) expected error")
	}
}
