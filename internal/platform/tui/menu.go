package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgbsweeper/internal/core"
	"github.com/vovakirdan/rgbsweeper/internal/games/rgbsweeper"
	"github.com/vovakirdan/rgbsweeper/internal/storage"
)

// MenuItem represents a selectable board preset in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Board  string // e.g. "10x10, 5 per color"
	Best   string // Fastest win, empty if never won
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true)
	menuRed        = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	menuGreen      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	menuBlue       = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the preset picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a preset
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(store),
		cursor:    1, // Normal board
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// menuItems lists the presets with their board and best time.
func menuItems(store *storage.Store) []MenuItem {
	presets := rgbsweeper.Presets()
	items := make([]MenuItem, 0, len(presets))

	for _, p := range presets {
		item := MenuItem{GameID: p.ID, Title: p.Title}

		if cfg, err := rgbsweeper.ResolveConfig(p.Difficulty); err == nil {
			item.Board = fmt.Sprintf("%dx%d, %d per color", cfg.Board.Size, cfg.Board.Size, cfg.Board.MinesPerColor)
		} else {
			item.Board = "invalid config"
		}

		if store != nil {
			if best, ok, err := store.BestTime(p.ID); err == nil && ok {
				item.Best = rgbsweeper.FormatElapsed(best)
			}
		}

		items = append(items, item)
	}

	return items
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title, with each letter of RGB in its color
	title := menuRed.Render("R") + menuGreen.Render("G") + menuBlue.Render("B") +
		menuTitleStyle.Render(" S W E E P E R")
	b.WriteString("\n")
	b.WriteString(centerStyled(title, len("RGB S W E E P E R"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	// Preset list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-22s %-20s", cursor, item.Title, item.Board)
		if item.Best != "" {
			line += "  best " + item.Best
		}
		if i == m.cursor {
			b.WriteString(centerStyled(menuCursor.Render(line), len(line), m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Best times  |  Q: Quit"
	b.WriteString(menuDim.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len(text), width)
}

// centerStyled centers already styled text whose visible width is known.
func centerStyled(text string, visible, width int) string {
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

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

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
