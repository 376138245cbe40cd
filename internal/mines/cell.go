package mines

// Cell is one grid square.
//
// Adjacent and AdjacentColor are only meaningful when MineColor is ColorNone.
// FlagColor is only meaningful while Flagged is set.
type Cell struct {
	MineColor     Color
	Opened        bool
	Flagged       bool
	FlagColor     Color
	Adjacent      int   // Mines among the up-to-8 neighbours
	AdjacentColor Color // OR of those neighbours' mine colors
}

// IsMine reports whether the cell holds a mine of any color.
func (c Cell) IsMine() bool {
	return c.MineColor != ColorNone
}

// IsCorrectlyFlagged reports whether the cell is a mine flagged with its own color.
func (c Cell) IsCorrectlyFlagged() bool {
	return c.IsMine() && c.Flagged && c.FlagColor == c.MineColor
}
