package main

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/piece"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Game flags shared by play and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagPieces     string
)

// loadConfig loads the game config and applies the difficulty preset and
// start level. A level of 0 keeps the preset's level; an empty preset keeps
// the file's settings.
func loadConfig(preset string, level int) (config.BlocksConfig, error) {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return cfg, err
	}

	if preset != "" {
		p, err := config.ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		config.ApplyBlocksPreset(&cfg, p)
	}
	if level > 0 {
		cfg.Play.StartLevel = level
	}
	if flagPieces != "" {
		cfg.Play.Pieces = flagPieces
	}

	return cfg, cfg.Validate()
}

// loadCatalog loads the pieces named by the config.
func loadCatalog(cfg config.BlocksConfig) (*piece.Catalog, error) {
	cat, err := piece.Load(cfg.Play.Pieces)
	if err != nil {
		return nil, fmt.Errorf("load pieces: %w", err)
	}
	logger.Debug("piece catalog loaded", "source", cat.Source(), "pieces", cat.Len())
	return cat, nil
}

// configureGame prepares the registry factory for a new blocks game.
func configureGame(preset string, level int) (config.BlocksConfig, error) {
	cfg, err := loadConfig(preset, level)
	if err != nil {
		return cfg, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return cfg, err
	}

	if err := blocks.Configure(blocks.Options{Config: cfg, Catalog: cat}); err != nil {
		return cfg, err
	}
	logger.Debug("game configured",
		"start_level", cfg.Play.StartLevel,
		"progression", cfg.Play.Progression,
		"randomizer", cfg.Play.Randomizer)
	return cfg, nil
}

// gameTitle returns the display title the blocks game registered with.
func gameTitle() string {
	if title, ok := registry.Title(blocks.ID); ok {
		return title
	}
	return blocks.ID
}
