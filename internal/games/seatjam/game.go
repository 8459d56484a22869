// Package seatjam provides the Seat Jam puzzle game: guide robots along the
// aisles into their labelled seats within a move budget.
package seatjam

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seatjam/internal/config"
	platformcore "github.com/vovakirdan/seatjam/internal/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/levels"
	"github.com/vovakirdan/seatjam/internal/registry"
)

// Game IDs.
const (
	CampaignID = "seatjam"
	ShuffleID  = "seatjam_shuffle"
)

// Mode selects where a run's stages come from.
type Mode int

const (
	ModeCampaign Mode = iota // Hand-made levels in order
	ModeShuffle              // Scrambled built-in layouts
)

// stage is one playable board of a run.
type stage struct {
	id       string
	name     string
	hint     string
	scenario core.Scenario
}

// walk animates a robot along a planned path before the move is committed.
type walk struct {
	path  core.Path
	step  int // index of the cell the robot is drawn on
	ticks int // ticks spent on the current cell
}

// Game implements the Seat Jam puzzle.
type Game struct {
	mode       Mode
	cfg        config.SeatJamConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger

	// Run
	stages     []stage
	stageIndex int
	board      *core.Board
	moveLimit  int
	movesMade  int

	// Screen dimensions
	screenW int
	screenH int

	// Status
	tick     uint64
	score    int
	gameOver bool
	won      bool
	cleared  bool // current stage solved, waiting for the player to continue
	paused   bool
	tooSmall bool
	loadErr  string

	// Selection state
	cursor      core.Pos
	selected    core.Pos
	hasSelected bool
	reachable   map[core.Pos]bool
	hint        map[core.Pos]bool
	walk        *walk

	// Feedback
	message      string
	messageColor platformcore.Color
	messageTicks int

	// Rendering
	groupColors map[string]platformcore.Color
	cellW       int
	rowStride   int
	hudHeight   int
	boardX      int
	boardY      int

	outcomes   []platformcore.LevelOutcome
	startLevel int // per-instance start level, wins over SetStartLevel
}

// Package-level settings, applied on the next Reset.
var (
	settingsMu         sync.Mutex
	selectedStartLevel int
	levelsDir          string
	configPath         string
	difficultyPreset   string
)

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return selectedStartLevel
}

// SetLevelsDir makes the campaign load levels from dir instead of the
// built-in set. An empty dir restores the built-in levels.
func SetLevelsDir(dir string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	levelsDir = dir
}

// SetConfigPath sets a config file that overrides the search order.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// takeSettings returns the current settings and consumes the start level.
func takeSettings() (start int, dir, cfgPath, preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	start = selectedStartLevel
	selectedStartLevel = 0
	return start, levelsDir, configPath, difficultyPreset
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          CampaignID,
		Title:       "Seat Jam",
		Description: "Guide every robot to its seat, level by level",
	}, func() registry.Game {
		return New(ModeCampaign)
	})
	registry.Register(registry.GameInfo{
		ID:          ShuffleID,
		Title:       "Seat Jam: Shuffle",
		Description: "Every hall scrambled into a fresh puzzle",
	}, func() registry.Game {
		return New(ModeShuffle)
	})
}

// New creates a new Seat Jam game in the given mode.
func New(mode Mode) *Game {
	return &Game{
		mode:      mode,
		cfg:       config.DefaultSeatJamConfig(),
		logger:    log.Default().WithPrefix("seatjam"),
		hudHeight: 4,
	}
}

// WithLogger sets the logger used for level loading problems.
func (g *Game) WithLogger(logger *log.Logger) *Game {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// StartAt makes the next Reset of this instance begin at the given level
// (1-indexed). Unlike SetStartLevel it does not affect other instances.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeShuffle {
		return ShuffleID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeShuffle {
		return "Seat Jam: Shuffle"
	}
	return "Seat Jam"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.cleared = false
	g.paused = false
	g.loadErr = ""
	g.board = nil
	g.stages = nil
	g.stageIndex = 0
	g.outcomes = nil

	start, dir, cfgPath, preset := takeSettings()
	if g.startLevel > 0 {
		start = g.startLevel
		g.startLevel = 0
	}
	g.loadConfig(cfgPath, preset)

	var err error
	if g.mode == ModeShuffle {
		g.stages, err = g.shuffleStages()
	} else {
		g.stages, err = g.campaignStages(dir)
	}
	if err != nil {
		g.logger.Error("cannot load levels", "err", err)
		g.loadErr = err.Error()
		g.gameOver = true
		return
	}
	if len(g.stages) == 0 {
		g.loadErr = "no levels found"
		g.gameOver = true
		return
	}

	if start > 0 && start <= len(g.stages) {
		g.stageIndex = start - 1
	}
	g.startStage()
}

// loadConfig loads the game config and applies the difficulty preset.
// A broken config falls back to the defaults.
func (g *Game) loadConfig(path, preset string) {
	cfg, err := config.LoadSeatJam(path)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultSeatJamConfig()
	}
	if p, ok := config.ParsePreset(preset); ok {
		config.ApplySeatJamPreset(&cfg, p)
	} else {
		g.logger.Warn("unknown difficulty preset", "preset", preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

func (g *Game) campaignStages(dir string) ([]stage, error) {
	loader := levels.NewBuiltinLoader()
	if dir != "" {
		loader = levels.NewLoader(dir)
	}
	all, err := loader.WithLogger(g.logger).LoadAll()
	if err != nil {
		return nil, err
	}

	stages := make([]stage, 0, len(all))
	for _, lvl := range all {
		s := lvl.Scenario()
		s.MoveLimit = g.difficulty.MoveLimit(s.MoveLimit)
		stages = append(stages, stage{
			id:       lvl.ID,
			name:     lvl.Name,
			hint:     lvl.Metadata["hint"],
			scenario: s,
		})
	}
	return stages, nil
}

// shuffleStages scrambles randomly picked built-in layouts.
func (g *Game) shuffleStages() ([]stage, error) {
	layouts, err := levels.NewBuiltinLoader().WithLogger(g.logger).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, nil
	}

	stages := make([]stage, 0, g.cfg.Scramble.Rounds)
	for round := 1; len(stages) < g.cfg.Scramble.Rounds && round <= 3*g.cfg.Scramble.Rounds; round++ {
		layout := layouts[g.rng.Intn(len(layouts))]
		s, err := core.Scramble(layout.Scenario(), core.ScrambleParams{
			Moves:       g.cfg.Scramble.Moves,
			Slack:       g.cfg.Scramble.Slack,
			Seed:        g.rng.Int63(),
			MaxAttempts: g.cfg.Scramble.MaxAttempts,
		})
		if err != nil {
			g.logger.Warn("cannot scramble layout", "layout", layout.ID, "err", err)
			continue
		}
		n := len(stages) + 1
		s.ID = fmt.Sprintf("shuffle-%d-%s", n, layout.ID)
		s.MoveLimit = g.difficulty.MoveLimit(s.MoveLimit)
		stages = append(stages, stage{
			id:       s.ID,
			name:     fmt.Sprintf("Shuffle %d: %s", n, layout.Name),
			scenario: s,
		})
	}
	return stages, nil
}

// startStage builds the board for the current stage.
func (g *Game) startStage() {
	if g.stageIndex >= len(g.stages) {
		g.won = true
		g.gameOver = true
		return
	}

	st := g.stages[g.stageIndex]
	board, err := core.NewBoard(st.scenario)
	if err != nil {
		// Stages are validated when loaded; a failure here means a bad scramble.
		g.logger.Error("cannot build board", "stage", st.id, "err", err)
		g.loadErr = err.Error()
		g.gameOver = true
		return
	}

	g.board = board
	g.moveLimit = st.scenario.MoveLimit
	g.movesMade = 0
	g.cleared = false
	g.walk = nil
	g.clearSelection()
	g.assignGroupColors()
	g.calculateLayout()

	if placements := board.Placements(); len(placements) > 0 {
		g.cursor = placements[0].At
	} else {
		g.cursor = core.P(0, 0)
	}

	if st.hint != "" {
		g.showMessage(st.hint, platformcore.ColorGray)
	} else {
		g.message = ""
		g.messageTicks = 0
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.outcomes = nil

	if input.Has(platformcore.ActionRestart) {
		if g.gameOver {
			g.Reset(platformcore.RuntimeConfig{
				Seed:    g.rng.Int63(),
				ScreenW: g.screenW,
				ScreenH: g.screenH,
			})
			return g.result()
		}
		if g.board != nil && !g.cleared {
			g.startStage()
			return g.result()
		}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.board == nil {
		return g.result()
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	switch {
	case g.cleared:
		if input.Has(platformcore.ActionSelect) {
			g.stageIndex++
			g.startStage()
		}
	case g.walk != nil:
		g.advanceWalk()
	default:
		g.handleInput(input)
	}

	return g.result()
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{State: g.State(), Outcomes: g.outcomes}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Won:      g.won,
	}
}

// movesLeft returns the remaining move budget, or 0 when unlimited.
func (g *Game) movesLeft() int {
	if g.moveLimit <= 0 {
		return 0
	}
	return max(g.moveLimit-g.movesMade, 0)
}

// currentStage returns the stage being played.
func (g *Game) currentStage() stage {
	if g.stageIndex < len(g.stages) {
		return g.stages[g.stageIndex]
	}
	return stage{}
}

// LevelInfo identifies a campaign level.
type LevelInfo struct {
	ID   string
	Name string
}

// Levels returns the campaign levels in play order, from the configured
// levels directory or the built-in set.
func Levels() []LevelInfo {
	settingsMu.Lock()
	dir := levelsDir
	settingsMu.Unlock()

	loader := levels.NewBuiltinLoader()
	if dir != "" {
		loader = levels.NewLoader(dir)
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil
	}
	infos := make([]LevelInfo, len(lvls))
	for i, l := range lvls {
		infos[i] = LevelInfo{ID: l.ID, Name: l.Name}
	}
	return infos
}
