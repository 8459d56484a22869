package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seatjam/internal/core"
	"github.com/vovakirdan/seatjam/internal/registry"
	"github.com/vovakirdan/seatjam/internal/storage"
)

// MenuItem is one playable mode in the main menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // 0 when nothing was recorded yet
}

// MenuModel is the main menu listing the registered modes.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	theme      SeatJamTheme
	selected   *MenuItem
	scoreboard bool
	quitting   bool
}

// NewMenuModel creates a menu over every registered mode, annotated with
// the best score from store when one is available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, info := range registry.List() {
		item := MenuItem{
			GameID:      info.ID,
			Title:       info.Title,
			Description: info.Description,
		}
		if store != nil {
			item.Best, _ = store.HighScore(info.ID)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     GetSeatJamTheme(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor < len(m.items) {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	lines := []string{
		"",
		m.theme.MenuTitle.Render("S E A T   J A M"),
		"",
		m.theme.MenuDescription.Render("Choose a mode"),
		"",
	}
	for i, item := range m.items {
		lines = append(lines, m.itemLine(i, item))
	}
	if m.cursor < len(m.items) {
		if desc := m.items[m.cursor].Description; desc != "" {
			lines = append(lines, "", m.theme.MenuDescription.Render(desc))
		}
	}
	lines = append(lines, "",
		m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"))

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, width))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m MenuModel) itemLine(i int, item MenuItem) string {
	label := "  " + item.Title
	style := m.theme.MenuItemNormal
	if i == m.cursor {
		label = "> " + item.Title
		style = m.theme.MenuItemActive
	}
	if item.Best > 0 {
		label += fmt.Sprintf("  (best %d)", item.Best)
	}
	return style.Render(label)
}

// Selected returns the chosen item, or nil while the menu is open.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config with the latest window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to center it within width terminal cells.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what the player picked in a standalone menu run.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the main menu in its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
