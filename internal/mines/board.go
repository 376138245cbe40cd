// Package mines implements the board model for multi-color minesweeper:
// deferred mine placement, adjacency counting with color mixing, flood
// reveal, colored flag bookkeeping and win/loss evaluation.
//
// The package is pure: it owns no terminal, clock or logger, and a Board
// is meant to be owned by exactly one game session.
package mines

import "fmt"

// Outcome is the result of opening a cell.
type Outcome int

const (
	OutcomeSafe Outcome = iota
	OutcomeMine
)

func (o Outcome) String() string {
	if o == OutcomeMine {
		return "mine"
	}
	return "safe"
}

// Board is an N×N grid of cells stored row-major (index = y*N + x).
type Board struct {
	size      int
	perColor  int // Configured mines per color
	cells     []Cell
	mines     []int  // Linear indices of every mined cell, in deal order
	remaining [3]int // Red, Green, Blue: mines minus flags placed
	safeLeft  int    // Non-mine cells not yet opened
	generated bool
}

// NewBoard creates an empty, unpopulated size×size board with perColor
// mines of each color. Counters start at the values a fresh game will have
// so the board can be displayed before the first reveal.
func NewBoard(size, perColor int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("mines: board size must be positive, got %d", size)
	}
	if perColor < 0 {
		return nil, fmt.Errorf("mines: mines per color must not be negative, got %d", perColor)
	}

	b := &Board{
		size:     size,
		perColor: perColor,
	}
	b.clear()
	b.resetCounters(b.dealCounts())
	return b, nil
}

// clear discards every cell and the mine list.
func (b *Board) clear() {
	b.cells = make([]Cell, b.size*b.size)
	b.mines = nil
	b.generated = false
}

// resetCounters sets per-color counters from the given deal and derives
// the safe-cell count from their sum.
func (b *Board) resetCounters(counts [3]int) {
	b.remaining = counts
	b.safeLeft = len(b.cells) - (counts[0] + counts[1] + counts[2])
}

// MineTotal returns the number of mines a generated board holds:
// 3×perColor, clamped to leave the safe starting cell free.
func (b *Board) MineTotal() int {
	total := 3 * b.perColor
	if limit := b.size*b.size - 1; total > limit {
		total = limit
	}
	return total
}

// dealCounts returns how many mines each color receives when MineTotal
// mines are dealt round-robin Red, Green, Blue.
func (b *Board) dealCounts() [3]int {
	var counts [3]int
	total := b.MineTotal()
	for i := range counts {
		counts[i] = total / 3
		if i < total%3 {
			counts[i]++
		}
	}
	return counts
}

// Size returns the side length N.
func (b *Board) Size() int {
	return b.size
}

// MinesPerColor returns the configured per-color mine count M.
func (b *Board) MinesPerColor() int {
	return b.perColor
}

// Generated reports whether mines have been placed.
func (b *Board) Generated() bool {
	return b.generated
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// CheckBounds returns an *OutOfBoundsError if (x, y) is off the board.
// It lets callers validate coordinates without triggering a panic.
func (b *Board) CheckBounds(x, y int) error {
	if !b.InBounds(x, y) {
		return &OutOfBoundsError{Op: "check", X: x, Y: y, Size: b.size}
	}
	return nil
}

// mustBeInBounds panics with an *OutOfBoundsError for off-board coordinates.
func (b *Board) mustBeInBounds(op string, x, y int) {
	if !b.InBounds(x, y) {
		panic(&OutOfBoundsError{Op: op, X: x, Y: y, Size: b.size})
	}
}

// Index converts in-bounds coordinates to a linear index.
func (b *Board) Index(x, y int) int {
	return y*b.size + x
}

// Coords converts a linear index back to coordinates.
func (b *Board) Coords(i int) (x, y int) {
	return i % b.size, i / b.size
}

// Cell returns a copy of the cell at (x, y).
// Panics with *OutOfBoundsError for off-board coordinates.
func (b *Board) Cell(x, y int) Cell {
	b.mustBeInBounds("cell", x, y)
	return b.cells[b.Index(x, y)]
}

// at returns a pointer to the cell at in-bounds coordinates.
func (b *Board) at(x, y int) *Cell {
	return &b.cells[y*b.size+x]
}

// Cells returns a copy of every cell in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// MineIndices returns a copy of the linear indices of every mine.
func (b *Board) MineIndices() []int {
	out := make([]int, len(b.mines))
	copy(out, b.mines)
	return out
}

// RemainingMines returns the player-facing counter for a flag color:
// mines of that color minus flags of that color currently placed.
// It may be negative. Returns 0 for non-flag colors.
func (b *Board) RemainingMines(c Color) int {
	if !c.IsFlagColor() {
		return 0
	}
	return b.remaining[colorSlot(c)]
}

// RemainingSafeCells returns the number of non-mine cells not yet opened.
func (b *Board) RemainingSafeCells() int {
	return b.safeLeft
}

// forEachNeighbor calls fn for each in-bounds 8-neighbour of (x, y).
func (b *Board) forEachNeighbor(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}
