package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// MenuLevels is the number of start levels offered by the level picker.
const MenuLevels = 15

// menuEntry is one line of the main menu.
type menuEntry struct {
	label  string
	preset config.DifficultyPreset // empty for non-preset entries
}

var menuEntries = []menuEntry{
	{"Easy   (level 1)", config.DifficultyEasy},
	{"Normal (level 5)", config.DifficultyNormal},
	{"Hard   (level 10)", config.DifficultyHard},
	{"Fixed  (no speed-up)", config.DifficultyFixed},
	{"Select level...", ""},
	{"High scores", ""},
}

const (
	entryLevelSelect = 4
	entryScoreboard  = 5
)

// MenuModel lets users choose a difficulty preset or a start level.
type MenuModel struct {
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	highScore      int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	result         MenuResult
	done           bool
	quitting       bool
	openScoreboard bool
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Level           int // 0 = use the preset's start level
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// NewMenuModel creates a new menu model. highScore is shown under the title
// when positive.
func NewMenuModel(cfg core.RuntimeConfig, highScore int) MenuModel {
	return MenuModel{
		cursor:    1, // Normal
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		highScore: highScore,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp, MenuActionDown:
		m.cursor = core.Clamp(m.cursor+step(action), 0, len(menuEntries)-1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case entryLevelSelect:
			m.inLevelSelect = true
			m.levelCursor = 0
		case entryScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		default:
			m.result = MenuResult{Preset: menuEntries[m.cursor].preset}
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionDown:
		m.levelCursor = core.Clamp(m.levelCursor+step(action), 0, MenuLevels-1)
	case MenuActionSelect:
		m.result = MenuResult{
			Preset: config.DifficultyNormal,
			Level:  m.levelCursor + 1, // 1-indexed
		}
		m.done = true
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  B L O C K S  ", m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}

	if m.inLevelSelect {
		b.WriteString(centerText("Select start level:", m.width))
		b.WriteString("\n\n")
		for i := range MenuLevels {
			b.WriteString(centerText(fmt.Sprintf("%s%2d", cursorMark(i == m.levelCursor), i+1), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
		return b.String()
	}

	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")
	for i, e := range menuEntries {
		b.WriteString(centerText(cursorMark(i == m.cursor)+e.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Result returns the menu outcome.
func (m MenuModel) Result() MenuResult {
	r := m.result
	r.Config = m.config
	switch {
	case m.openScoreboard:
		r.WantsScoreboard = true
	case m.quitting || !m.done:
		r.Quit = true
	}
	return r
}

// step is the cursor delta of a vertical menu action.
func step(action MenuAction) int {
	if action == MenuActionUp {
		return -1
	}
	return 1
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, highScore int) (MenuResult, error) {
	model := NewMenuModel(cfg, highScore)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}
