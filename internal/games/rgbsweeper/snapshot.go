package rgbsweeper

import (
	"time"

	"github.com/vovakirdan/rgbsweeper/internal/mines"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Preset         string
	Phase          Phase
	CursorX        int
	CursorY        int
	Size           int
	RemainingMines [3]int // Red, green, blue
	RemainingSafe  int
	Cells          []mines.Cell
	HelpOpen       bool
	ConfirmOpen    bool
	Elapsed        time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Preset:  g.preset.ID,
		Phase:   g.phase,
		CursorX: g.cursorX,
		CursorY: g.cursorY,
		Size:    g.board.Size(),
		RemainingMines: [3]int{
			g.board.RemainingMines(mines.ColorRed),
			g.board.RemainingMines(mines.ColorGreen),
			g.board.RemainingMines(mines.ColorBlue),
		},
		RemainingSafe: g.board.RemainingSafeCells(),
		Cells:         g.board.Cells(),
		HelpOpen:      g.showHelp,
		ConfirmOpen:   g.confirmCancel,
		Elapsed:       g.Elapsed(),
	}
}
