package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/seatjam/internal/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam"
	"github.com/vovakirdan/seatjam/internal/registry"
	"github.com/vovakirdan/seatjam/internal/storage"
)

// sessionState is the screen a session is on.
type sessionState int

const (
	stateMenu sessionState = iota
	stateLevels
	stateScoreboard
	stateGame
)

// levelStarter is implemented by games that can start at a chosen level.
type levelStarter interface {
	StartAt(level int)
}

// SessionModel manages the full session flow:
// menu -> (level picker) -> game -> menu, with the scoreboard a Tab away.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	sessionID  string
	logger     *log.Logger
	state      sessionState
	menu       MenuModel
	levels     SeatJamMenuModel
	scoreboard ScoreboardModel
	gameModel  *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	sessionID := uuid.NewString()

	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: sessionID,
		logger:    log.Default().With("session", sessionID),
		state:     stateMenu,
		menu:      NewMenuModel(store, cfg),
	}
}

// WithLogger tags logger with the session and uses it for the session.
func (m SessionModel) WithLogger(logger *log.Logger) SessionModel {
	if logger != nil {
		m.logger = logger.With("session", m.sessionID, "user", m.username)
	}
	return m
}

// SessionID returns the unique identifier of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateLevels:
		return m.updateLevels(msg)
	case stateScoreboard:
		return m.updateScoreboard(msg)
	case stateGame:
		if m.gameModel != nil {
			return m.updateGame(msg)
		}
	}
	return m.updateMenu(msg)
}

// toMenu returns to a fresh game menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.state = stateScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		if selected.GameID == seatjam.CampaignID {
			m.state = stateLevels
			m.levels = NewSeatJamMenuModel(m.store, m.config.ScreenW, m.config.ScreenH)
			return m, m.levels.Init()
		}
		return m.startGame(selected.GameID, 0)
	}

	return m, cmd
}

// updateLevels handles updates when in the level picker.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if levelsModel, ok := newLevels.(SeatJamMenuModel); ok {
		m.levels = levelsModel
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.WantsBack():
		return m.toMenu()
	}

	if selection := m.levels.Selected(); selection != nil {
		return m.startGame(seatjam.CampaignID, selection.Level)
	}

	return m, cmd
}

// updateScoreboard handles updates when on the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if boardModel, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = boardModel
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// startGame creates the game and switches the session to it.
func (m SessionModel) startGame(gameID string, level int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		// Menus only list registered games
		m.logger.Error("cannot create game", "game", gameID, "err", err)
		return m.toMenu()
	}
	if starter, ok := game.(levelStarter); ok && level > 0 {
		starter.StartAt(level)
	}

	m.logger.Info("game started", "game", gameID, "level", level)

	gameModel := NewModel(game, m.store, m.config).WithLogger(m.logger)
	m.gameModel = &gameModel
	m.state = stateGame

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateLevels:
		return m.levels.View()
	case stateScoreboard:
		return m.scoreboard.View()
	case stateGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	}
	return m.menu.View()
}
