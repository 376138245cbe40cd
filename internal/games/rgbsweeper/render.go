package rgbsweeper

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/rgbsweeper/internal/config"
	"github.com/vovakirdan/rgbsweeper/internal/core"
	"github.com/vovakirdan/rgbsweeper/internal/mines"
)

const (
	cellWidth  = 4 // "+---" per column
	cellHeight = 2 // border row plus glyph row
	hudHeight  = 2
	footHeight = 2
	minWidth   = 48 // Widest HUD line
)

// paletteColors maps mine colors to screen colors.
var paletteColors = map[mines.Color]core.Color{
	mines.ColorNone:    core.ColorDefault,
	mines.ColorRed:     core.ColorRed,
	mines.ColorGreen:   core.ColorGreen,
	mines.ColorBlue:    core.ColorBlue,
	mines.ColorYellow:  core.ColorYellow,
	mines.ColorMagenta: core.ColorMagenta,
	mines.ColorCyan:    core.ColorCyan,
	mines.ColorWhite:   core.ColorWhite,
}

// ScreenColor converts a mine color to its screen color.
func ScreenColor(c mines.Color) core.Color {
	if sc, ok := paletteColors[c]; ok {
		return sc
	}
	return core.ColorDefault
}

// Glyph resolves how a cell is drawn:
//
//	.  unopened
//	P  bold, in the flag color
//	1-8 in the mix of neighbouring mine colors, blank for zero
//	X  underlined, in the mine color
//
// The cursor cell is additionally underlined.
func Glyph(c mines.Cell, isCursor bool) core.Cell {
	var cursor core.Attr
	if isCursor {
		cursor = core.AttrUnderline
	}
	return glyph(c, cursor)
}

func glyph(c mines.Cell, cursor core.Attr) core.Cell {
	switch {
	case c.Flagged:
		return core.Cell{Rune: 'P', Color: ScreenColor(c.FlagColor), Attr: core.AttrBold | cursor}
	case !c.Opened:
		return core.Cell{Rune: '.', Attr: cursor}
	case c.IsMine():
		return core.Cell{Rune: 'X', Color: ScreenColor(c.MineColor), Attr: core.AttrUnderline | cursor}
	case c.Adjacent == 0:
		return core.Cell{Rune: ' ', Attr: cursor}
	default:
		return core.Cell{Rune: rune('0' + c.Adjacent), Color: ScreenColor(c.AdjacentColor), Attr: cursor}
	}
}

// cursorAttr returns the attribute used to highlight the cursor.
func (g *Game) cursorAttr() core.Attr {
	if g.cfg.Display.CursorStyle == config.CursorReverse {
		return core.AttrReverse
	}
	return core.AttrUnderline
}

// minScreenSize returns the smallest screen that fits the grid.
func (g *Game) minScreenSize() (int, int) {
	n := g.cfg.Board.Size
	w := core.Max(n*cellWidth+1, minWidth)
	h := hudHeight + n*cellHeight + 1 + footHeight
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderInfo(dst, 0)

	if g.showHelp {
		g.renderHelp(dst, hudHeight)
		return
	}

	g.renderStatus(dst, 1)

	n := g.board.Size()
	boardW := n*cellWidth + 1
	boardX := (g.screenW - boardW) / 2
	g.renderBoard(dst, boardX, hudHeight)

	g.renderFooter(dst, hudHeight+n*cellHeight+1)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	w, h := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, please resize terminal", w, h))
}

// renderInfo draws the per-color mine counters and the safe-cell count.
func (g *Game) renderInfo(dst *core.Screen, y int) {
	b := g.board
	parts := []struct {
		label string
		color core.Color
		value int
	}{
		{"RED", core.ColorRed, b.RemainingMines(mines.ColorRed)},
		{"GREEN", core.ColorGreen, b.RemainingMines(mines.ColorGreen)},
		{"BLUE", core.ColorBlue, b.RemainingMines(mines.ColorBlue)},
	}

	line := fmt.Sprintf("RED: %d, GREEN: %d, BLUE: %d, REMAINING: %d",
		parts[0].value, parts[1].value, parts[2].value, b.RemainingSafeCells())
	x := (g.screenW - len(line)) / 2

	for _, p := range parts {
		x = dst.DrawTextStyled(x, y, p.label, p.color, core.AttrNone)
		x = dst.DrawTextStyled(x, y, fmt.Sprintf(": %d, ", p.value), core.ColorDefault, core.AttrNone)
	}
	dst.DrawText(x, y, fmt.Sprintf("REMAINING: %d", b.RemainingSafeCells()))
}

// renderStatus draws the title, board size and timer.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	n := g.board.Size()
	line := fmt.Sprintf("%s  %dx%d", g.preset.Title, n, n)
	if g.cfg.Display.ShowTimer {
		line += "  " + FormatElapsed(g.Elapsed())
	}
	dst.DrawTextCenteredStyled(y, line, core.ColorGray, core.AttrNone)
}

// FormatElapsed renders a duration as mm:ss, or h:mm:ss past an hour.
func FormatElapsed(d time.Duration) string {
	s := int(d / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// renderBoard draws the "+---+" grid with one glyph per cell.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.board.Size()
	cursor := g.cursorAttr()

	for y := range n + 1 {
		py := boardY + y*cellHeight
		for x := range n {
			dst.DrawText(boardX+x*cellWidth, py, "+---")
		}
		dst.Set(boardX+n*cellWidth, py, '+')

		if y == n {
			break
		}

		for x := range n + 1 {
			dst.Set(boardX+x*cellWidth, py+1, '|')
		}
		for x := range n {
			var attr core.Attr
			if !g.phase.Over() && x == g.cursorX && y == g.cursorY {
				attr = cursor
			}
			c := glyph(g.board.Cell(x, y), attr)
			if x == g.hitX && y == g.hitY {
				c.Attr |= core.AttrReverse
			}
			dst.SetStyled(boardX+x*cellWidth+2, py+1, c.Rune, c.Color, c.Attr)
		}
	}
}

// renderFooter draws the prompt or end-of-game message under the grid.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch {
	case g.phase == PhaseLost:
		dst.DrawTextCenteredStyled(y, "GAME OVER!", core.ColorBrightRed, core.AttrBold)
		dst.DrawTextCentered(y+1, "[R] Restart  [Q] Quit")
	case g.phase == PhaseWon:
		msg := "CONGRATULATIONS!"
		if g.cfg.Display.ShowTimer {
			msg += " Cleared in " + FormatElapsed(g.Elapsed())
		}
		dst.DrawTextCenteredStyled(y, msg, core.ColorBrightGreen, core.AttrBold)
		dst.DrawTextCentered(y+1, "[R] Restart  [Q] Quit")
	case g.phase == PhaseAbandoned:
		dst.DrawTextCentered(y, "Game cancelled.")
		dst.DrawTextCentered(y+1, "[R] Restart  [Q] Quit")
	case g.confirmCancel:
		dst.DrawTextCenteredStyled(y, "Do you want to cancel the game? (y/n)", core.ColorYellow, core.AttrBold)
	default:
		dst.DrawTextCentered(y, "[H] Open Help menu.")
	}
}

// renderHelp draws the key controls and the color mixing table.
func (g *Game) renderHelp(dst *core.Screen, top int) {
	const width = 40
	x := core.Max((g.screenW-width)/2, 0)
	y := top

	line := func(text string) {
		dst.DrawText(x, y, text)
		y++
	}

	line("---KEY CONTROLS---")
	y++
	line("[W/S/A/D] UP/DOWN/LEFT/RIGHT")
	for _, f := range []struct {
		key   string
		name  string
		color core.Color
	}{
		{"I", "RED", core.ColorRed},
		{"O", "GREEN", core.ColorGreen},
		{"P", "BLUE", core.ColorBlue},
	} {
		cx := dst.DrawTextStyled(x, y, "["+f.key+"] Place/Remove a ", core.ColorDefault, core.AttrNone)
		cx = dst.DrawTextStyled(cx, y, f.name, f.color, core.AttrNone)
		dst.DrawText(cx, y, " flag.")
		y++
	}
	line("[Space] Open a tile.")
	line("[C] Quit the game.")
	y++

	line("---COLOR HELP---")
	y++
	mixes := [][]mines.Color{
		{mines.ColorRed, mines.ColorBlue},
		{mines.ColorBlue, mines.ColorGreen},
		{mines.ColorGreen, mines.ColorRed},
		{mines.ColorRed, mines.ColorBlue, mines.ColorGreen},
	}
	for _, mix := range mixes {
		cx := x
		result := mines.ColorNone
		for i, c := range mix {
			if i > 0 {
				cx = dst.DrawTextStyled(cx, y, " + ", core.ColorDefault, core.AttrNone)
			}
			cx = dst.DrawTextStyled(cx, y, colorLabel(c), ScreenColor(c), core.AttrNone)
			result = result.Or(c)
		}
		cx = dst.DrawTextStyled(cx, y, " -> ", core.ColorDefault, core.AttrNone)
		dst.DrawTextStyled(cx, y, colorLabel(result), ScreenColor(result), core.AttrNone)
		y++
	}
	y++

	line("Press any key to return to the game.")
}

// colorLabel returns the upper-case color name used on screen.
func colorLabel(c mines.Color) string {
	return strings.ToUpper(c.String())
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "WASD/Arrows: Move | Space: Open | I/O/P: Flag R/G/B | H: Help | C: Cancel | Q: Quit"
}
