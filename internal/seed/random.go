package seed

import (
	"fmt"
	"math/rand/v2"

	"lifebuf/internal/config"
	"lifebuf/internal/core"
	"lifebuf/internal/life"

	"github.com/pkg/errors"
)

// Random fills the board deterministically from a PCG stream.
type Random struct {
	Source  int64
	Density float64
}

// Name identifies the strategy.
func (r *Random) Name() string { return fmt.Sprintf("random:%d", r.Source) }

// Seed marks each cell alive with probability Density.
func (r *Random) Seed(size core.Size) (*life.Board, error) {
	b, err := life.NewBoard(size)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(uint64(r.Source), 0))
	FillDensity(rng, b.Cells(), r.Density)
	return b, nil
}

// FillDensity sets each cell alive with probability density using rng.
func FillDensity(rng *rand.Rand, cells []bool, density float64) {
	for i := range cells {
		cells[i] = rng.Float64() < density
	}
}

func newRandom(cfg config.Seed) (Strategy, error) {
	if cfg.Random.Density < 0 || cfg.Random.Density > 1 {
		return nil, errors.Errorf("density %g outside [0,1]", cfg.Random.Density)
	}
	return &Random{Source: cfg.Random.Seed, Density: cfg.Random.Density}, nil
}

func init() {
	Register(config.StrategyRandom, newRandom)
}
