package seed

import (
	"sort"

	"lifebuf/internal/config"
	"lifebuf/internal/core"
	"lifebuf/internal/life"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned for pattern names with no built-in definition.
var ErrUnknownPattern = errors.New("unknown pattern")

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

var patterns = map[string][]Coord{
	"default":    {{1, 2}, {2, 3}, {3, 1}, {1, 3}, {2, 2}, {3, 3}},
	"glider":     {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	"blinker":    {{1, 0}, {1, 1}, {1, 2}},
	"block":      {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"beacon":     {{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	"toad":       {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	"rpentomino": {{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
}

// Patterns lists the built-in pattern names in alphabetical order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternCells returns a copy of the named built-in pattern.
func PatternCells(name string) ([]Coord, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return append([]Coord(nil), cells...), nil
}

// Pattern marks a fixed set of cells alive on an otherwise dead board.
type Pattern struct {
	Label  string
	Cells  []Coord
	Offset Coord
}

// Name identifies the strategy.
func (p *Pattern) Name() string { return "pattern:" + p.Label }

// Seed places the pattern. Cells that fall outside the board are skipped.
func (p *Pattern) Seed(size core.Size) (*life.Board, error) {
	b, err := life.NewBoard(size)
	if err != nil {
		return nil, err
	}
	for _, c := range p.Cells {
		b.Set(c.Col+p.Offset.Col, c.Row+p.Offset.Row, true)
	}
	return b, nil
}

func newPattern(cfg config.Seed) (Strategy, error) {
	offset := Coord{Row: cfg.Offset[0], Col: cfg.Offset[1]}
	if len(cfg.Cells) > 0 {
		cells := make([]Coord, len(cfg.Cells))
		for i, rc := range cfg.Cells {
			cells[i] = Coord{Row: rc[0], Col: rc[1]}
		}
		return &Pattern{Label: "custom", Cells: cells, Offset: offset}, nil
	}
	name := cfg.Pattern
	if name == "" {
		name = "default"
	}
	cells, err := PatternCells(name)
	if err != nil {
		return nil, err
	}
	return &Pattern{Label: name, Cells: cells, Offset: offset}, nil
}

func init() {
	Register(config.StrategyPattern, newPattern)
}
