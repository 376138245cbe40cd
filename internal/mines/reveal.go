package mines

// OpenCell reveals the cell at (x, y).
//
// Flagged and already opened cells are left alone and report OutcomeSafe.
// A mine reports OutcomeMine and is not mutated; the caller decides how to
// resolve the loss. Any other cell is opened, and if it has no adjacent
// mines its whole zero-region plus the numbered boundary is opened too.
//
// Panics with *OutOfBoundsError for off-board coordinates.
func (b *Board) OpenCell(x, y int) Outcome {
	b.mustBeInBounds("open", x, y)

	cell := b.at(x, y)
	if cell.Flagged || cell.Opened {
		return OutcomeSafe
	}
	if cell.IsMine() {
		return OutcomeMine
	}

	cell.Opened = true
	b.safeLeft--

	if cell.Adjacent == 0 {
		b.openNeighborhood(x, y)
	}
	return OutcomeSafe
}

// openNeighborhood flood-fills outward from the zero-count cell at (x, y).
// Each unflagged, unopened, non-mine neighbour is opened; only neighbours
// that are themselves zero-count are expanded further. A cell is pushed
// at most once because it is marked opened before being queued.
func (b *Board) openNeighborhood(x, y int) {
	stack := []int{b.Index(x, y)}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cx, cy := b.Coords(i)

		b.forEachNeighbor(cx, cy, func(nx, ny int) {
			n := b.at(nx, ny)
			if n.Flagged || n.Opened || n.IsMine() {
				return
			}
			n.Opened = true
			b.safeLeft--
			if n.Adjacent == 0 {
				stack = append(stack, b.Index(nx, ny))
			}
		})
	}
}
