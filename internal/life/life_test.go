package life

import (
	"testing"

	"lifebuf/internal/core"

	"github.com/pkg/errors"
)

type stubSeeder struct {
	board *Board
	err   error
	calls int
}

func (s *stubSeeder) Name() string { return "stub" }

func (s *stubSeeder) Seed(core.Size) (*Board, error) {
	s.calls++
	return s.board, s.err
}

func blinkerSeeder(t *testing.T) *stubSeeder {
	b := mustBoard(t, 5, 5)
	b.Set(2, 1, true)
	b.Set(2, 2, true)
	b.Set(2, 3, true)
	return &stubSeeder{board: b}
}

func TestLifeResetAndStep(t *testing.T) {
	seeder := blinkerSeeder(t)
	l, err := New(core.Size{W: 5, H: 5}, seeder)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	l.Step()
	if l.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", l.Generation())
	}
	expectCells(t, l.Board(), map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after step")

	l.Step()
	if !l.Board().Equal(seeder.board) {
		t.Fatal("blinker did not oscillate with period 2")
	}

	// The seeder's board must not be stepped in place.
	if !seeder.board.Alive(2, 1) || seeder.board.Alive(1, 2) {
		t.Fatal("Life mutated the seeded board")
	}

	if err := l.Reset(); err != nil {
		t.Fatalf("second Reset: %v", err)
	}
	if l.Generation() != 0 || seeder.calls != 2 {
		t.Fatalf("Reset did not restart the run: gen=%d calls=%d", l.Generation(), seeder.calls)
	}
}

func TestLifeResetPropagatesSeedError(t *testing.T) {
	seeder := blinkerSeeder(t)
	l, err := New(core.Size{W: 5, H: 5}, seeder)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	l.Step()

	boom := errors.New("decode failed")
	seeder.err = boom
	if err := l.Reset(); !errors.Is(err, boom) {
		t.Fatalf("Reset err = %v, want wrapped %v", err, boom)
	}
	if l.Generation() != 1 || l.Board().Population() != 3 {
		t.Fatal("failed Reset changed the running state")
	}
}

func TestLifeResetRejectsWrongSize(t *testing.T) {
	seeder := &stubSeeder{board: mustBoard(t, 4, 4)}
	l, err := New(core.Size{W: 5, H: 5}, seeder)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Reset(); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Reset err = %v, want ErrInvalidSize", err)
	}
}

func TestLifeParameters(t *testing.T) {
	l, err := New(core.Size{W: 5, H: 5}, blinkerSeeder(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	l.Step()
	snap := l.Parameters()
	if p, ok := snap.Lookup("population"); !ok || p.Value != "3" {
		t.Fatalf("population param = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("generation"); !ok || p.Value != "1" {
		t.Fatalf("generation param = %+v, %v", p, ok)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	if _, err := New(core.Size{W: 0, H: 5}, blinkerSeeder(t)); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
	if _, err := New(core.Size{W: 5, H: 5}, nil); err == nil {
		t.Fatal("expected error for nil seeder")
	}
}
