package mines

import (
	"errors"
	"testing"
)

// pos is a board coordinate used to lay out fixtures.
type pos struct{ x, y int }

// newFixedBoard builds a generated board with mines at the given positions
// so tests can reason about exact layouts.
func newFixedBoard(t *testing.T, size int, layout map[pos]Color) *Board {
	t.Helper()

	b, err := NewBoard(size, 0)
	if err != nil {
		t.Fatalf("NewBoard(%d, 0) failed: %v", size, err)
	}

	var counts [3]int
	for p, c := range layout {
		if !c.IsFlagColor() {
			t.Fatalf("fixture mine at %v has non-pure color %v", p, c)
		}
		i := b.Index(p.x, p.y)
		b.cells[i].MineColor = c
		b.mines = append(b.mines, i)
		counts[colorSlot(c)]++
	}
	b.resetCounters(counts)
	b.computeAdjacency()
	b.generated = true
	return b
}

// expectPanic runs fn and returns the error it panicked with.
func expectPanic(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		e, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		err = e
	}()
	fn()
	return nil
}

// countOpened returns how many cells are open.
func countOpened(b *Board) int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Opened {
			n++
		}
	}
	return n
}

func TestOutOfBoundsErrorMatchesSentinel(t *testing.T) {
	var err error = &OutOfBoundsError{Op: "open", X: -1, Y: 0, Size: 5}
	if !errors.Is(err, ErrOutOfBounds) {
		t.Error("OutOfBoundsError should match ErrOutOfBounds")
	}
	if errors.Is(err, ErrInvalidFlagColor) {
		t.Error("OutOfBoundsError should not match ErrInvalidFlagColor")
	}
}
