package game

import (
	"fmt"

	"github.com/vovakirdan/tui-lightsout/internal/core"
)

const (
	cellWidth  = 4 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.diff.Size
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, move counter and best result.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "LIGHTS OUT"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	movesStr := fmt.Sprintf("Moves: %d", g.session.Moves)
	dst.DrawText(boardX, 1, movesStr)

	bestStr := "Best: -"
	if g.bestMoves > 0 {
		bestStr = fmt.Sprintf("Best: %d", g.bestMoves)
	}
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX+len(movesStr)+2 {
		bestX = boardX + len(movesStr) + 2
	}
	dst.DrawText(bestX, 1, bestStr)

	diffStr := fmt.Sprintf("%s (%dx%d)", g.diff.Label, g.diff.Size, g.diff.Size)
	diffX := boardX + (boardW-len(diffStr))/2
	dst.DrawText(diffX, 2, diffStr)
}

// renderBoard draws the grid with lights, hint marks and the cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.diff.Size

	// Grid lines
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Cell contents
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			lit := g.session.Board[row*size+col]

			sym := '·'
			color := core.ColorGray
			if lit {
				sym = '■'
				color = core.ColorBrightYellow
			}
			if g.hintAt(row, col) {
				sym = '◆'
				color = core.ColorBrightGreen
			}

			if row == g.cursorRow && col == g.cursorCol {
				dst.SetColored(cellX, cellY, '[', core.ColorBrightCyan)
				dst.SetColored(cellX+1, cellY, sym, core.ColorBrightCyan)
				dst.SetColored(cellX+2, cellY, ']', core.ColorBrightCyan)
			} else {
				dst.SetColored(cellX+1, cellY, sym, color)
			}
		}
	}
}

// renderFooter draws control hints and the hint-overlay legend.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	dst.DrawTextCentered(y+1, g.Controls())
	if g.hint != nil {
		dst.DrawTextCentered(y+2, "Press the marked switches (in any order) to clear the board")
	}
}

// renderOverlays draws the win and no-solution overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	if g.unsolvable {
		g.drawOverlay(dst, centerX, centerY,
			"NO SOLUTION",
			"This board cannot be cleared",
			"Press T to dismiss, N for a new puzzle")
		return
	}

	if g.session.Cleared && g.session.Moves > 0 {
		movesStr := fmt.Sprintf("Cleared in %d moves", g.session.Moves)
		if g.isNewBest() {
			g.drawOverlay(dst, centerX, centerY, "ALL LIGHTS OUT!", movesStr, "New best!", "Press R for a new puzzle")
		} else {
			g.drawOverlay(dst, centerX, centerY, "ALL LIGHTS OUT!", movesStr, "Press R for a new puzzle")
		}
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Press | T: Hint | N: New | Q: Quit"
}
