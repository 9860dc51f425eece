package life

import "github.com/pkg/errors"

// CountNeighbors returns the number of live cells among the eight neighbors of
// (x, y). Edges are hard: positions off the board are never read and count as
// dead.
func CountNeighbors(b *Board, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.H {
			continue
		}
		row := ny * b.W
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= b.W {
				continue
			}
			if b.cells[row+nx] {
				count++
			}
		}
	}
	return count
}

// nextState applies the B3/S23 transition table.
func nextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false // underpopulation
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive:
		return false // overpopulation
	default:
		return neighbors == 3
	}
}

// Step returns the next generation of b as a new board. b is not modified.
func Step(b *Board) *Board {
	next := &Board{W: b.W, H: b.H, cells: make([]bool, len(b.cells))}
	stepInto(next, b)
	return next
}

// StepInto writes the next generation of src into dst. dst must be a distinct
// board of the same size; its previous contents are overwritten.
func StepInto(dst, src *Board) error {
	if dst == nil || src == nil {
		return errors.New("step: nil board")
	}
	if dst.W != src.W || dst.H != src.H {
		return errors.Wrapf(ErrInvalidSize, "step: destination %dx%d does not match source %dx%d", dst.W, dst.H, src.W, src.H)
	}
	if dst == src || (len(dst.cells) > 0 && &dst.cells[0] == &src.cells[0]) {
		return errors.New("step: destination aliases source")
	}
	stepInto(dst, src)
	return nil
}

func stepInto(dst, src *Board) {
	w, h := src.W, src.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dst.cells[idx] = nextState(src.cells[idx], CountNeighbors(src, x, y))
		}
	}
}
