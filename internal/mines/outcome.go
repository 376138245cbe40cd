package mines

// IsWon reports whether every safe cell is open and every mine carries a
// flag of its own color.
func (b *Board) IsWon() bool {
	if b.safeLeft > 0 {
		return false
	}
	for _, i := range b.mines {
		c := b.cells[i]
		if !c.Flagged || c.FlagColor != c.MineColor {
			return false
		}
	}
	return true
}

// ResolveLoss exposes the mines after a mine was opened: flagged mines show
// their true color and unflagged mines are opened. Safe cells, including
// wrongly flagged ones, are left as they are.
func (b *Board) ResolveLoss() {
	for _, i := range b.mines {
		c := &b.cells[i]
		if c.Flagged {
			c.FlagColor = c.MineColor
		} else {
			c.Opened = true
		}
	}
}

// ResolveWin opens every cell on the board.
func (b *Board) ResolveWin() {
	for i := range b.cells {
		b.cells[i].Opened = true
	}
}
