package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seatjam/internal/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam"
	"github.com/vovakirdan/seatjam/internal/storage"
)

// SeatJamSelection holds the user's selection from the level picker.
type SeatJamSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// SeatJamMenuModel is the level picker for the Seat Jam campaign.
type SeatJamMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	levels       []seatjam.LevelInfo
	cleared      map[string]bool
	selection    SeatJamSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        SeatJamTheme
}

// NewSeatJamMenuModel creates a new level selection model.
// Levels already cleared in store are marked.
func NewSeatJamMenuModel(store *storage.Store, width, height int) SeatJamMenuModel {
	cleared := map[string]bool{}
	if store != nil {
		if c, err := store.ClearedLevels(seatjam.CampaignID); err == nil {
			cleared = c
		}
	}

	return SeatJamMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		levels:    seatjam.Levels(),
		cleared:   cleared,
		choosing:  true,
		theme:     GetSeatJamTheme(),
	}
}

// Init initializes the model.
func (m SeatJamMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SeatJamMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m SeatJamMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = SeatJamSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is how many levels fit between header and footer.
func (m SeatJamMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
// Cursor 0 is the "Start from Beginning" entry, level i is cursor i.
func (m *SeatJamMenuModel) updateScroll() {
	idx := max(m.cursor-1, 0)
	visible := m.visibleItems()

	if idx < m.scrollOffset {
		m.scrollOffset = idx
	} else if idx >= m.scrollOffset+visible {
		m.scrollOffset = idx - visible + 1
	}
}

// View renders the level selection.
func (m SeatJamMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S E A T   J A M"), m.width))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("Select a level (%d/%d cleared):", m.clearedCount(), len(m.levels))
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset == 0 {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if m.cursor == 0 {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+"Start from Beginning"), m.width))
		b.WriteString("\n")
	}

	startIdx := m.scrollOffset
	endIdx := min(startIdx+m.visibleItems(), len(m.levels))

	for i := startIdx; i < endIdx; i++ {
		lvl := m.levels[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		mark := "  "
		if m.cleared[lvl.ID] {
			mark = " ✓"
			style = m.theme.MenuItemCleared
		}
		if i+1 == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%2d. %s%s", cursor, i+1, lvl.Name, mark))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m SeatJamMenuModel) clearedCount() int {
	n := 0
	for _, lvl := range m.levels {
		if m.cleared[lvl.ID] {
			n++
		}
	}
	return n
}

// Selected returns the selection, or nil if still choosing.
func (m SeatJamMenuModel) Selected() *SeatJamSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m SeatJamMenuModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m SeatJamMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SeatJamMenuModel) WantsBack() bool {
	return m.back
}

// RunSeatJamLevelSelector runs the level selection and returns the selection.
// A nil selection means the user went back or quit.
func RunSeatJamLevelSelector(store *storage.Store, cfg core.RuntimeConfig) (*SeatJamSelection, core.RuntimeConfig, error) {
	model := NewSeatJamMenuModel(store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(SeatJamMenuModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
