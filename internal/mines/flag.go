package mines

// SetFlag places, removes or recolors a flag on the cell at (x, y).
//
//   - unflagged: plant a flag of color, consuming one slot of its counter
//   - flagged with color: remove the flag, returning the slot
//   - flagged with another color: swap, returning the old slot and
//     consuming a new one
//
// Opened cells cannot be flagged. Counters are a player-facing tally and
// are adjusted whether or not the cell holds a mine of that color.
//
// Panics with *OutOfBoundsError for off-board coordinates and with
// *InvalidFlagColorError unless color is Red, Green or Blue.
func (b *Board) SetFlag(x, y int, color Color) {
	b.mustBeInBounds("flag", x, y)
	if !color.IsFlagColor() {
		panic(&InvalidFlagColorError{Color: color})
	}

	cell := b.at(x, y)
	if cell.Opened {
		return
	}

	switch {
	case !cell.Flagged:
		cell.Flagged = true
		cell.FlagColor = color
		b.remaining[colorSlot(color)]--
	case cell.FlagColor == color:
		cell.Flagged = false
		cell.FlagColor = ColorNone
		b.remaining[colorSlot(color)]++
	default:
		b.remaining[colorSlot(cell.FlagColor)]++
		cell.FlagColor = color
		b.remaining[colorSlot(color)]--
	}
}

// FlagCount returns how many flags of the given color are on the board.
func (b *Board) FlagCount(color Color) int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Flagged && b.cells[i].FlagColor == color {
			n++
		}
	}
	return n
}
