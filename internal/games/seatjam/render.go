package seatjam

import (
	"sort"
	"strconv"
	"strings"

	platformcore "github.com/vovakirdan/seatjam/internal/core"
	"github.com/vovakirdan/seatjam/internal/games/seatjam/core"
)

// messageLines is the space reserved below the board for feedback.
const messageLines = 3

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.board != nil {
		g.calculateLayout()
	}
}

// calculateLayout determines cell sizes and the board origin.
func (g *Game) calculateLayout() {
	grid := g.board.Grid()
	rows, cols := grid.Rows(), grid.Cols()

	labelW := 1
	for _, c := range grid.Seats() {
		labelW = max(labelW, len(c.SeatLabel()))
	}
	// marker, bracket or pad, label, bracket or pad, marker
	g.cellW = labelW + 4

	g.rowStride = 2
	if g.hudHeight+2*rows-1+messageLines > g.screenH {
		g.rowStride = 1
	}

	boardW := cols * g.cellW
	boardH := (rows-1)*g.rowStride + 1
	play := platformcore.Rect{W: g.screenW, H: g.screenH - g.hudHeight - messageLines}
	if !play.Fits(boardW+2, boardH) {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	area := platformcore.CenteredRect(play.W, play.H, boardW, boardH)
	g.boardX = area.X
	g.boardY = g.hudHeight + area.Y
}

// assignGroupColors gives every label prefix (the "A" of "A1") its own color.
func (g *Game) assignGroupColors() {
	labels := g.board.Scenario().Seats.Labels()

	var groups []string
	seen := make(map[string]bool)
	for _, l := range labels {
		grp := groupOf(l)
		if !seen[grp] {
			seen[grp] = true
			groups = append(groups, grp)
		}
	}
	sort.Strings(groups)

	index := make(map[string]int, len(groups))
	for i, grp := range groups {
		index[grp] = i
	}
	g.groupColors = make(map[string]platformcore.Color, len(labels))
	for _, l := range labels {
		g.groupColors[l] = platformcore.GroupColor(index[groupOf(l)])
	}
}

// groupOf returns the leading letters of a label.
func groupOf(label string) string {
	i := strings.IndexAny(label, "0123456789")
	if i <= 0 {
		return label
	}
	return label[:i]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.loadErr != "" {
		g.renderOverlay(dst, "No levels to play", g.loadErr)
		return
	}
	if g.board == nil {
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderMessage(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", "All levels cleared! Score: "+strconv.Itoa(g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Out of moves", "Press R to restart")
	case g.cleared:
		g.renderOverlay(dst, "Level cleared!", "Press Space for the next level")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.board != nil {
		st := g.currentStage()
		moves := "Moves: " + strconv.Itoa(g.movesMade)
		if g.moveLimit > 0 {
			moves += "/" + strconv.Itoa(g.moveLimit)
		}
		hud += " | Level " + strconv.Itoa(g.stageIndex+1) + "/" + strconv.Itoa(len(g.stages)) + ": " + st.name +
			" | Score: " + strconv.Itoa(g.score) +
			" | " + moves +
			" | Seated: " + strconv.Itoa(g.board.CorrectCount()) + "/" + strconv.Itoa(g.board.SeatCount())
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)

	controls := " ←↑↓→/WASD: Move | Space: Select | X: Cancel | R: Restart | P: Pause"
	if g.difficulty != nil && g.difficulty.HintsAllowed() {
		controls = " ←↑↓→/WASD: Move | Space: Select | X: Cancel | H: Hint | R: Restart | P: Pause"
	}
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)

	dst.DrawHLine(0, 3, dst.Width(), '─', platformcore.ColorGray)
}

// renderBoard draws every cell of the board.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.board.Grid()
	for _, cell := range grid.Cells() {
		x := g.boardX + cell.Col()*g.cellW
		y := g.boardY + cell.Row()*g.rowStride
		g.renderCell(dst, x, y, cell)
	}
}

// occupantLabel returns the label drawn on p, accounting for a robot that
// is mid-walk: it has left its source visually but not yet in the board.
func (g *Game) occupantLabel(p core.Pos) (string, bool) {
	if g.walk != nil {
		if p == g.walk.path[g.walk.step].Key() {
			robot, _ := g.board.RobotAt(g.walk.path.Start().Key())
			return robot.Label, true
		}
		if p == g.walk.path.Start().Key() {
			return "", false
		}
	}
	robot, ok := g.board.RobotAt(p)
	return robot.Label, ok
}

// renderCell draws one cell: markers at both ends, the body in between.
func (g *Game) renderCell(dst *platformcore.Screen, x, y int, cell *core.Cell) {
	p := cell.Key()
	inner := g.cellW - 4
	label, occupied := g.occupantLabel(p)
	walking := g.walk != nil && p == g.walk.path[g.walk.step].Key()

	// Markers
	switch {
	case p == g.cursor && g.walk == nil && !g.cleared:
		dst.SetWithColor(x, y, '>', platformcore.ColorBrightYellow)
		dst.SetWithColor(x+g.cellW-1, y, '<', platformcore.ColorBrightYellow)
	case g.hasSelected && p == g.selected:
		dst.SetWithColor(x, y, '(', platformcore.ColorBrightWhite)
		dst.SetWithColor(x+g.cellW-1, y, ')', platformcore.ColorBrightWhite)
	}

	bodyX := x + 1
	if cell.HasBlocker() {
		dst.DrawHLine(bodyX, y, inner+2, '▓', platformcore.ColorGray)
		return
	}

	labelColor := g.groupColors[label]
	if walking || (g.hasSelected && p == g.selected) {
		labelColor = platformcore.ColorBrightWhite
	}

	if cell.IsSeat() {
		bracketColor := platformcore.ColorGray
		text, textColor := cell.SeatLabel(), platformcore.ColorGray
		switch {
		case occupied && label == cell.SeatLabel():
			text, textColor = label, platformcore.ColorBrightGreen
			bracketColor = platformcore.ColorGreen
		case occupied:
			text, textColor = label, labelColor
			bracketColor = platformcore.ColorYellow
		case g.hint[p]:
			bracketColor = platformcore.ColorCyan
		case g.reachable[p]:
			bracketColor = platformcore.ColorGreen
		}
		dst.SetWithColor(bodyX, y, '[', bracketColor)
		dst.DrawTextWithColor(bodyX+1, y, pad(text, inner), textColor)
		dst.SetWithColor(bodyX+inner+1, y, ']', bracketColor)
		return
	}

	if occupied {
		dst.DrawTextWithColor(bodyX+1, y, pad(label, inner), labelColor)
		return
	}
	mark, color := "·", platformcore.ColorGray
	switch {
	case g.hint[p]:
		mark, color = "*", platformcore.ColorCyan
	case g.reachable[p]:
		mark, color = "•", platformcore.ColorGreen
	}
	dst.DrawTextWithColor(bodyX+1, y, pad(mark, inner), color)
}

// pad centers s in a field of width w.
func pad(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}

// renderMessage draws the feedback line under the board.
func (g *Game) renderMessage(dst *platformcore.Screen) {
	if g.message == "" {
		return
	}
	boardH := (g.board.Grid().Rows()-1)*g.rowStride + 1
	dst.DrawTextCenteredWithColor(g.boardY+boardH+1, g.message, g.messageColor)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, platformcore.ColorBrightWhite)

	inner := box.Inset(1)
	dst.DrawTextCenteredWithColor(inner.Y, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCenteredWithColor(inner.Bottom()-1, line2, platformcore.ColorWhite)
}
