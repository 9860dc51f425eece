package seed

import (
	"testing"

	"lifebuf/internal/config"
	"lifebuf/internal/core"

	"github.com/pkg/errors"
)

func TestDefaultPatternMatchesDemoCells(t *testing.T) {
	s, err := Build(config.StrategyPattern, config.DefaultConfig().Seed)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := s.Seed(core.Size{W: 10, H: 10})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	want := []Coord{{1, 2}, {2, 3}, {3, 1}, {1, 3}, {2, 2}, {3, 3}}
	for _, c := range want {
		if !b.Alive(c.Col, c.Row) {
			t.Fatalf("row %d col %d should be alive", c.Row, c.Col)
		}
	}
	if b.Population() != len(want) {
		t.Fatalf("population = %d, want %d", b.Population(), len(want))
	}
}

func TestPatternOffsetAndClipping(t *testing.T) {
	p := &Pattern{Label: "blinker", Cells: []Coord{{1, 0}, {1, 1}, {1, 2}}, Offset: Coord{Row: 2, Col: 2}}
	b, err := p.Seed(core.Size{W: 4, H: 4})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	// Columns 2 and 3 fit on row 3; column 4 is off the board.
	if !b.Alive(2, 3) || !b.Alive(3, 3) || b.Population() != 2 {
		t.Fatalf("unexpected placement, population %d", b.Population())
	}
}

func TestCustomCells(t *testing.T) {
	cfg := config.DefaultConfig().Seed
	cfg.Cells = [][2]int{{0, 4}, {2, 1}}
	s, err := Build(config.StrategyPattern, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Name() != "pattern:custom" {
		t.Fatalf("name = %q", s.Name())
	}
	b, err := s.Seed(core.Size{W: 5, H: 3})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !b.Alive(4, 0) || !b.Alive(1, 2) || b.Population() != 2 {
		t.Fatal("custom cells not placed at (row, col)")
	}
}

func TestUnknownPattern(t *testing.T) {
	cfg := config.DefaultConfig().Seed
	cfg.Pattern = "spaceship-factory"
	if _, err := Build(config.StrategyPattern, cfg); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestBuiltinPatternsAreListed(t *testing.T) {
	names := Patterns()
	if len(names) != len(patterns) {
		t.Fatalf("listed %d patterns, have %d", len(names), len(patterns))
	}
	for _, name := range names {
		cells, err := PatternCells(name)
		if err != nil || len(cells) == 0 {
			t.Fatalf("pattern %q: %v", name, err)
		}
	}
}
