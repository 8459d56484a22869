package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seatjam/internal/registry"
	"github.com/vovakirdan/seatjam/internal/storage"
)

const (
	scoreboardRows = 100
	dateLayout     = "Jan 02 15:04"
)

// scoreboardView selects what the table lists.
type scoreboardView int

const (
	viewScores scoreboardView = iota // best finished runs
	viewLevels                       // recent level attempts
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardMutedStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	View     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.View, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.View, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		View:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "runs/levels")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows finished runs and level attempts per mode.
type ScoreboardModel struct {
	store     *storage.Store
	games     []registry.GameInfo
	current   int
	view      scoreboardView
	rows      []table.Row
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// gameID is the mode on display, or "" when nothing is registered.
func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// reload rebuilds the table for the current mode and view.
// Storage errors leave the table empty.
func (m *ScoreboardModel) reload() {
	m.rows = nil
	m.stats = nil
	if id := m.gameID(); id != "" && m.store != nil {
		if m.view == viewLevels {
			m.rows = m.levelRows(id)
		} else {
			m.rows = m.scoreRows(id)
			m.stats, _ = m.store.GetGameStats(id)
		}
	}
	m.table = m.buildTable()
}

func (m *ScoreboardModel) scoreRows(gameID string) []table.Row {
	scores, err := m.store.TopScores(gameID, scoreboardRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format(dateLayout)}
	}
	return rows
}

func (m *ScoreboardModel) levelRows(gameID string) []table.Row {
	results, err := m.store.LevelResults(gameID, scoreboardRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(results))
	for i, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		rows[i] = table.Row{
			r.LevelID,
			outcome,
			strconv.Itoa(r.Moves),
			strconv.Itoa(r.MovesLeft),
			strconv.Itoa(r.Score),
			r.CreatedAt.Format(dateLayout),
		}
	}
	return rows
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewLevels {
		return []table.Column{
			{Title: "Level", Width: 14},
			{Title: "Result", Width: 7},
			{Title: "Moves", Width: 6},
			{Title: "Left", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 13},
		}
	}
	// The date column takes what is left, within reason
	date := min(max(m.width-32, 13), 20)
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: date},
	}
}

func (m *ScoreboardModel) buildTable() table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
		table.WithStyles(styles),
	)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycle moves to the next (delta 1) or previous (delta -1) mode.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.view == viewLevels {
		title = "LEVEL RESULTS"
	}
	if len(m.games) > 0 {
		title += " - " + m.games[m.current].Title
	}

	sections := []string{
		"",
		centerText(boardTitleStyle.Render(title), m.width),
		"",
		centerText(m.tabs(), m.width),
		"",
		centerText(boardFrameStyle.Render(m.body()), m.width),
	}
	if summary := m.summary(); summary != "" {
		sections = append(sections, centerText(boardMutedStyle.Render(summary), m.width))
	}
	sections = append(sections, "", boardMutedStyle.Render(m.help.View(m.keys)))
	return strings.Join(sections, "\n")
}

// tabs renders one tab per mode, collapsing to "< title >" when they do
// not fit the terminal.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			parts[i] = boardActiveStyle.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.games[m.current].Title)
	}
	return line
}

func (m ScoreboardModel) body() string {
	if len(m.rows) > 0 {
		return m.table.View()
	}
	if m.view == viewLevels {
		return boardEmptyStyle.Render("No levels played yet.\nFinish a level to see it here!")
	}
	return boardEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
}

// summary is the stats line under the score table.
func (m ScoreboardModel) summary() string {
	if m.view != viewScores || m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  |  average %.0f  |  last played %s",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.LastPlayed.Format(dateLayout))
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports
// whether the player wants to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
