package seatjam

import (
	"errors"
	"strconv"

	platformcore "github.com/vovakirdan/seatjam/internal/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
)

// handleInput processes player input while no robot is walking.
func (g *Game) handleInput(input platformcore.InputFrame) {
	grid := g.board.Grid()

	if input.Has(platformcore.ActionUp) {
		g.cursor.Row = platformcore.Clamp(g.cursor.Row-1, 0, grid.Rows()-1)
	}
	if input.Has(platformcore.ActionDown) {
		g.cursor.Row = platformcore.Clamp(g.cursor.Row+1, 0, grid.Rows()-1)
	}
	if input.Has(platformcore.ActionLeft) {
		g.cursor.Col = platformcore.Clamp(g.cursor.Col-1, 0, grid.Cols()-1)
	}
	if input.Has(platformcore.ActionRight) {
		g.cursor.Col = platformcore.Clamp(g.cursor.Col+1, 0, grid.Cols()-1)
	}

	if input.Has(platformcore.ActionCancel) {
		g.clearSelection()
	}
	if input.Has(platformcore.ActionHint) {
		g.showHint()
	}
	if input.Has(platformcore.ActionSelect) {
		g.handleSelect()
	}
}

// handleSelect picks a robot under the cursor or sends the selected robot
// to the cursor.
func (g *Game) handleSelect() {
	if robot, ok := g.board.RobotAt(g.cursor); ok {
		if g.hasSelected && g.selected == g.cursor {
			g.clearSelection()
			return
		}
		g.selectRobot(g.cursor)
		if len(g.reachable) == 0 {
			g.showMessage("Robot "+robot.Label+" is boxed in", platformcore.ColorYellow)
		}
		return
	}

	if !g.hasSelected {
		return
	}

	path, err := g.board.PlanMove(g.selected, g.cursor)
	if err == nil {
		g.walk = &walk{path: path}
		g.hint = nil
		return
	}

	// A refused move drops the selection
	g.clearSelection()
	switch {
	case errors.Is(err, core.ErrUnreachable):
		g.showMessage("No path there!", platformcore.ColorBrightRed)
	case errors.Is(err, core.ErrOccupied):
		g.showMessage("That spot is blocked", platformcore.ColorBrightRed)
	default:
		g.showMessage(err.Error(), platformcore.ColorBrightRed)
	}
}

// selectRobot marks the robot at p as selected and caches where it can go.
func (g *Game) selectRobot(p core.Pos) {
	g.selected = p
	g.hasSelected = true
	g.hint = nil
	g.reachable = make(map[core.Pos]bool)
	for _, c := range g.board.Destinations(p) {
		g.reachable[c.Key()] = true
	}
}

func (g *Game) clearSelection() {
	g.hasSelected = false
	g.reachable = nil
	g.hint = nil
}

// showHint marks the current shortest way from the selected robot to its
// own seat.
func (g *Game) showHint() {
	if !g.difficulty.HintsAllowed() {
		g.showMessage("Hints are off on this difficulty", platformcore.ColorGray)
		return
	}
	if !g.hasSelected {
		g.showMessage("Select a robot first", platformcore.ColorGray)
		return
	}
	robot, ok := g.board.RobotAt(g.selected)
	if !ok {
		return
	}
	if g.board.SeatedCorrectly(g.selected) {
		g.showMessage("Robot "+robot.Label+" is already seated", platformcore.ColorGreen)
		return
	}

	grid := g.board.Grid()
	path := g.board.PathFinder().FindShortestPath(grid.At(g.selected), grid.SeatByLabel(robot.Label))
	if path == nil {
		g.showMessage("Seat "+robot.Label+" can't be reached yet", platformcore.ColorYellow)
		return
	}
	g.hint = make(map[core.Pos]bool, len(path))
	for _, p := range path.Positions() {
		g.hint[p] = true
	}
	g.showMessage("Seat "+robot.Label+" is "+strconv.Itoa(path.Steps())+" steps away", platformcore.ColorCyan)
}

// advanceWalk moves the walking robot one cell every StepTicks ticks.
func (g *Game) advanceWalk() {
	g.walk.ticks++
	if g.walk.ticks < g.cfg.Animation.StepTicks {
		return
	}
	g.walk.ticks = 0
	g.walk.step++
	if g.walk.step >= len(g.walk.path)-1 {
		g.finishWalk()
	}
}

// finishWalk commits the move once the robot reaches its destination.
func (g *Game) finishWalk() {
	path := g.walk.path
	g.walk = nil
	g.clearSelection()

	res, err := g.board.CompleteMove(path)
	if err != nil {
		g.logger.Warn("move rejected", "from", path.Start(), "to", path.End(), "err", err)
		g.showMessage("Move interrupted", platformcore.ColorBrightRed)
		return
	}
	g.movesMade++
	g.cursor = res.To

	switch {
	case res.Correct:
		g.showMessage("Robot "+res.Robot.Label+" found its seat!", platformcore.ColorBrightGreen)
	case res.Seated:
		g.showMessage("Wrong seat for "+res.Robot.Label, platformcore.ColorYellow)
	default:
		g.message = ""
		g.messageTicks = 0
	}

	switch {
	case g.board.Solved():
		g.clearStage()
	case g.moveLimit > 0 && g.movesMade >= g.moveLimit:
		g.failStage()
	}
}

// clearStage awards the level bonus and waits for the player to continue.
func (g *Game) clearStage() {
	award := g.cfg.Scoring.LevelBonus + g.movesLeft()*g.cfg.Scoring.MoveBonus
	g.score += award
	g.cleared = true
	g.outcomes = append(g.outcomes, platformcore.LevelOutcome{
		LevelID:   g.currentStage().id,
		Moves:     g.movesMade,
		MovesLeft: g.movesLeft(),
		Score:     award,
		Won:       true,
	})
	g.showMessage("Level cleared! +"+strconv.Itoa(award), platformcore.ColorBrightGreen)

	if g.stageIndex == len(g.stages)-1 {
		g.won = true
		g.gameOver = true
	}
}

// failStage ends the run when the move budget is spent.
func (g *Game) failStage() {
	g.gameOver = true
	g.outcomes = append(g.outcomes, platformcore.LevelOutcome{
		LevelID: g.currentStage().id,
		Moves:   g.movesMade,
		Won:     false,
	})
	g.showMessage("Out of moves", platformcore.ColorBrightRed)
}

func (g *Game) showMessage(text string, color platformcore.Color) {
	g.message = text
	g.messageColor = color
	g.messageTicks = g.cfg.Animation.MessageTicks
}
