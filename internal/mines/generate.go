package mines

import "math/rand"

// Generate populates the board with mines, guaranteeing that (safeX, safeY)
// is not a mine. Any prior cell state and counters are discarded, so it is
// also used to restart a game.
//
// Mines are taken from a uniform shuffle of every other cell and dealt
// round-robin Red, Green, Blue, so each color gets exactly M mines unless
// the board is too small, in which case the groups differ by at most one.
//
// Panics with *OutOfBoundsError if the safe cell is off the board.
func (b *Board) Generate(rng *rand.Rand, safeX, safeY int) {
	b.mustBeInBounds("generate", safeX, safeY)

	safe := b.Index(safeX, safeY)
	candidates := make([]int, 0, len(b.cells)-1)
	for i := range len(b.cells) {
		if i != safe {
			candidates = append(candidates, i)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	b.clear()
	var counts [3]int
	for n, idx := range candidates[:b.MineTotal()] {
		slot := n % len(mineColors)
		b.cells[idx].MineColor = mineColors[slot]
		b.mines = append(b.mines, idx)
		counts[slot]++
	}

	b.resetCounters(counts)
	b.computeAdjacency()
	b.generated = true
}

// computeAdjacency fills Adjacent and AdjacentColor for every non-mine
// cell in one pass, independent of reveal state.
func (b *Board) computeAdjacency() {
	for i := range b.cells {
		cell := &b.cells[i]
		if cell.IsMine() {
			continue
		}

		x, y := b.Coords(i)
		count := 0
		color := ColorNone
		b.forEachNeighbor(x, y, func(nx, ny int) {
			if n := b.at(nx, ny); n.IsMine() {
				count++
				color = color.Or(n.MineColor)
			}
		})
		cell.Adjacent = count
		cell.AdjacentColor = color
	}
}
