package life

import (
	"lifebuf/internal/core"

	"github.com/pkg/errors"
)

// Seeder produces the initial board for a run.
type Seeder interface {
	Name() string
	Seed(size core.Size) (*Board, error)
}

// Life runs Conway's Game of Life with hard edges. Generations alternate
// between two boards so the previous state is never written while the next
// one is computed.
type Life struct {
	size   core.Size
	seeder Seeder
	cur    *Board
	nxt    *Board
	gen    int
}

// New returns a Life simulation of the given size seeded by seeder. The board
// stays dead until Reset is called.
func New(size core.Size, seeder Seeder) (*Life, error) {
	if seeder == nil {
		return nil, errors.New("life: nil seeder")
	}
	cur, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	nxt, _ := NewBoard(size)
	return &Life{size: size, seeder: seeder, cur: cur, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.size }

// Cells exposes the current grid values.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Board returns the current generation. It is replaced on the next Step and
// must not be modified.
func (l *Life) Board() *Board { return l.cur }

// Generation reports how many steps have run since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Reset replaces the board with a freshly seeded one. On error the current
// state is left untouched.
func (l *Life) Reset() error {
	b, err := l.seeder.Seed(l.size)
	if err != nil {
		return errors.Wrapf(err, "seed %q", l.seeder.Name())
	}
	if b == nil {
		return errors.Errorf("seed %q returned no board", l.seeder.Name())
	}
	if b.Size() != l.size {
		return errors.Wrapf(ErrInvalidSize, "seed %q produced %dx%d, want %dx%d",
			l.seeder.Name(), b.W, b.H, l.size.W, l.size.H)
	}
	l.cur = b.Clone()
	l.gen = 0
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	stepInto(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Parameters describes the run for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.size.W),
				core.IntParam("h", "Height", l.size.H),
				core.StringParam("seed", "Seed", l.seeder.Name()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.gen),
				core.IntParam("population", "Population", l.cur.Population()),
			},
		},
	}}
}
