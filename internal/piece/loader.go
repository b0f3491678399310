package piece

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/piece/formats"
)

//go:embed defaults/pieces.yaml
var defaultPiecesYAML []byte

// DefaultSource names the embedded catalog.
const DefaultSource = "embedded"

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	defs, err := formats.ParseYAML(defaultPiecesYAML)
	if err != nil {
		return nil, fmt.Errorf("piece: parsing embedded catalog: %w", err)
	}
	c, err := Build(defs)
	if err != nil {
		return nil, err
	}
	c.source = DefaultSource
	return c, nil
}

// Load reads a catalog from path. A file is parsed by its extension; a
// directory must hold one legacy text file per type, named piece_<n>.txt.
// An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	path = expandHome(path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("piece: cannot open catalog: %w", err)
	}

	var defs []formats.Piece
	if info.IsDir() {
		defs, err = loadLegacyDir(path)
	} else {
		defs, err = loadFile(path)
	}
	if err != nil {
		return nil, err
	}

	c, err := Build(defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.source = path
	return c, nil
}

func loadFile(path string) ([]formats.Piece, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("piece: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	defs, err := formats.Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("piece: parsing file %s: %v: %w", path, err, ErrInvalid)
	}
	return defs, nil
}

func loadLegacyDir(dir string) ([]formats.Piece, error) {
	defs := make([]formats.Piece, 0, Count)
	for n := range Count {
		path := filepath.Join(dir, formats.LegacyFileName(n))
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("piece: missing %s: %w", path, ErrInvalid)
		}
		if err != nil {
			return nil, fmt.Errorf("piece: reading file %s: %w", path, err)
		}

		def, err := formats.ParseLegacy(data)
		if err != nil {
			return nil, fmt.Errorf("piece: parsing file %s: %v: %w", path, err, ErrInvalid)
		}
		if def.Name == "" {
			def.Name = strings.TrimSuffix(formats.LegacyFileName(n), ".txt")
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
