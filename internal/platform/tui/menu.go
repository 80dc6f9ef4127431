package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sunskim/internal/core"
	"github.com/vovakirdan/sunskim/internal/games/sunskim"
	"github.com/vovakirdan/sunskim/internal/registry"
	"github.com/vovakirdan/sunskim/internal/storage"
)

// MenuItem is one mode on the menu, with its record from storage.
type MenuItem struct {
	GameID    string
	Title     string
	Summary   string
	HighScore int
	Runs      int
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))

	for _, mode := range modes {
		item := MenuItem{GameID: mode.ID, Title: mode.Title, Summary: mode.Summary}
		if store != nil {
			if st, err := store.GetGameStats(mode.ID); err == nil {
				item.HighScore = st.HighScore
				item.Runs = st.GamesCount
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

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

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keyMapper.MapKeyToMenuAction(msg); action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp, MenuActionDown:
		if n := len(m.items); n > 0 {
			step := 1
			if action == MenuActionUp {
				step = n - 1
			}
			m.cursor = (m.cursor + step) % n
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff8c1a"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c8a27a")).Padding(0, 2)
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a0a00")).Background(lipgloss.Color("#ffb347")).Padding(0, 2)
	menuInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd27a")).Italic(true)
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuControls = "↑/↓ choose   enter play   tab scores   q quit"

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		menuTitleStyle.Render("S U N   S K I M M E R"),
		"",
	}
	width := 0
	for _, item := range m.items {
		width = max(width, lipgloss.Width(item.Title))
	}
	for i, item := range m.items {
		label := item.Title + strings.Repeat(" ", width-lipgloss.Width(item.Title))
		if i == m.cursor {
			lines = append(lines, menuCursorStyle.Render(label))
		} else {
			lines = append(lines, menuItemStyle.Render(label))
		}
	}
	lines = append(lines, "", menuInfoStyle.Render(m.itemInfo()), "", menuHintStyle.Render(menuControls))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// itemInfo describes the highlighted mode and its record.
func (m MenuModel) itemInfo() string {
	if len(m.items) == 0 {
		return "No modes registered"
	}
	item := m.items[m.cursor]
	if item.Runs == 0 {
		return item.Summary
	}
	return fmt.Sprintf("%s. Best %s over %d runs", item.Summary, sunskim.FormatNumber(float64(item.HighScore)), item.Runs)
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
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// centerStyled renders text with style and centers the result.
func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
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

	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
