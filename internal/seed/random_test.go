package seed

import (
	"slices"
	"testing"

	"lifebuf/internal/config"
	"lifebuf/internal/core"
)

func TestRandomIsDeterministic(t *testing.T) {
	size := core.Size{W: 20, H: 15}
	a, err := (&Random{Source: 7, Density: 0.4}).Seed(size)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	b, err := (&Random{Source: 7, Density: 0.4}).Seed(size)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}
	c, _ := (&Random{Source: 8, Density: 0.4}).Seed(size)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical boards")
	}
}

func TestRandomDensityExtremes(t *testing.T) {
	size := core.Size{W: 9, H: 9}
	empty, _ := (&Random{Source: 1, Density: 0}).Seed(size)
	if empty.Population() != 0 {
		t.Fatal("density 0 produced live cells")
	}
	full, _ := (&Random{Source: 1, Density: 1}).Seed(size)
	if full.Population() != size.Area() {
		t.Fatal("density 1 left dead cells")
	}
}

func TestRandomFactoryRejectsBadDensity(t *testing.T) {
	cfg := config.DefaultConfig().Seed
	cfg.Random.Density = -0.1
	if _, err := Build(config.StrategyRandom, cfg); err == nil {
		t.Fatal("expected density error")
	}
}
