// Package registry maps game IDs to factories. A game package registers
// itself from init; the commands only know the ID.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Game is a tick-driven game with no terminal dependencies. The platform
// maps keys to actions, runs the clock and draws the screen it renders.
type Game interface {
	// ID is the key used for score storage.
	ID() string
	Title() string

	// Reset starts over with the given seed and screen size.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick, applying the frame's actions in the order
	// they were pressed.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizable is implemented by games that follow terminal size changes
// without a reset.
type Resizable interface {
	Resize(width, height int)
}

// Factory creates a fresh game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register adds a game under id. It panics when id is taken.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := games[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{title: title, factory: f}
}

// Create returns a new game built by the factory registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Title returns the display title registered with id.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	return e.title, ok
}
