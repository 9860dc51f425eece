// Package life implements Conway's Game of Life (B3/S23) on a bounded grid.
package life

import (
	"lifebuf/internal/core"

	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a board is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("invalid board size")

// Board stores a 2D grid of cell states in row-major order.
type Board struct {
	W, H  int
	cells []bool
}

// NewBoard allocates a dead board with the given dimensions.
func NewBoard(size core.Size) (*Board, error) {
	if !size.Valid() {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", size.W, size.H)
	}
	return &Board{W: size.W, H: size.H, cells: make([]bool, size.Area())}, nil
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.W, H: b.H} }

// Cells exposes the backing slice. Callers must treat it as read-only unless
// they own the board.
func (b *Board) Cells() []bool { return b.cells }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// In reports whether (x, y) addresses a cell on the board.
func (b *Board) In(x, y int) bool {
	return b.Size().Contains(x, y)
}

// Alive reports the state of (x, y). Cells off the board are dead.
func (b *Board) Alive(x, y int) bool {
	if !b.In(x, y) {
		return false
	}
	return b.cells[b.Index(x, y)]
}

// Set updates the state of (x, y). Coordinates off the board are ignored.
func (b *Board) Set(x, y int, alive bool) {
	if !b.In(x, y) {
		return
	}
	b.cells[b.Index(x, y)] = alive
}

// Population counts the live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	return &Board{W: b.W, H: b.H, cells: cells}
}

// Equal reports whether both boards have the same size and cell states.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.W != other.W || b.H != other.H {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}
