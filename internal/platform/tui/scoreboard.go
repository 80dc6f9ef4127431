package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sunskim/internal/games/sunskim"
	"github.com/vovakirdan/sunskim/internal/registry"
	"github.com/vovakirdan/sunskim/internal/storage"
)

const maxRuns = 100

// boardView selects which runs the scoreboard lists.
type boardView int

const (
	viewBest boardView = iota
	viewRecent
)

func (v boardView) String() string {
	if v == viewRecent {
		return "Recent"
	}
	return "Best"
}

type scoreboardKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	View       key.Binding
	Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.View, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.View, k.Back, k.Quit}}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		View: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff8c1a"))
	boardTabStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a6a4a")).Padding(0, 1)
	boardActiveTab    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a0a00")).Background(lipgloss.Color("#ffb347")).Padding(0, 1)
	boardSummaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd27a"))
	boardFrameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5a2a00")).Padding(0, 1)
	boardEmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardHelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel lists recorded runs per mode.
type ScoreboardModel struct {
	modes     []registry.Mode
	current   int
	view      boardView
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      scoreboardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 10},
		{Title: "Mult", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
		{Title: "Cause", Width: 14},
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	// Cause soaks up spare width inside the frame
	if spare := m.width - 8 - used; spare > 0 {
		columns[5].Width = min(columns[5].Width+spare, 48)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#5a2a00")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffd27a")).
		Background(lipgloss.Color("#5a2a00")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches runs and aggregates for the current mode and view.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].ID
		if m.view == viewRecent {
			if recent, err := m.store.RecentRuns(maxRuns); err == nil {
				m.runs = runsFor(recent, id)
			}
		} else if best, err := m.store.TopRuns(id, maxRuns); err == nil {
			m.runs = best
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runsFor keeps the runs recorded for gameID, preserving order.
func runsFor(runs []storage.Run, gameID string) []storage.Run {
	out := runs[:0:0]
	for _, r := range runs {
		if r.GameID == gameID {
			out = append(out, r)
		}
	}
	return out
}

// runRows formats runs as table rows.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		cause := r.Reason
		if cause == "" {
			cause = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			sunskim.FormatNumber(float64(r.Score)),
			fmt.Sprintf("%dx", r.Multiplier),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
			cause,
		}
	}
	return rows
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// summaryLine condenses the mode's aggregates into one line.
func summaryLine(st *storage.GameStats) string {
	if st == nil || st.GamesCount == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("%d runs   avg %s   best %s   top mult %dx   longest %s",
		st.GamesCount,
		sunskim.FormatNumber(st.AvgScore),
		sunskim.FormatNumber(float64(st.HighScore)),
		st.BestMult,
		formatDuration(st.LongestRun))
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(runRows(m.runs))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + step + len(m.modes)) % len(m.modes)
	m.reload()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(boardTitleStyle, fmt.Sprintf("%s RUNS", strings.ToUpper(m.view.String())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(boardSummaryStyle, summaryLine(m.stats), m.width))
	b.WriteString("\n")

	body := boardEmptyStyle.Render("No runs recorded yet.\nSkim the sun to set a high score!")
	if len(m.runs) > 0 {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(centerStyled(boardHelpStyle, m.help.View(m.keys), m.width))
	return b.String()
}

// tabs renders the mode selector, collapsing to "< title >" when narrow.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.current {
			parts[i] = boardActiveTab.Render(mode.Title)
		} else {
			parts[i] = boardTabStyle.Render(mode.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		return boardActiveTab.Render("< " + m.modes[m.current].Title + " >")
	}
	return line
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports whether
// the player wants the menu back.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
