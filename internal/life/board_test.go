package life

import (
	"testing"

	"lifebuf/internal/core"

	"github.com/pkg/errors"
)

func TestNewBoardRejectsInvalidSize(t *testing.T) {
	for _, size := range []core.Size{{W: 0, H: 3}, {W: 3, H: 0}, {W: -1, H: 5}} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewBoard(%+v) err = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestBoardSetOutOfRangeIsIgnored(t *testing.T) {
	b := mustBoard(t, 3, 3)
	b.Set(-1, 0, true)
	b.Set(3, 1, true)
	b.Set(1, 3, true)
	if b.Population() != 0 {
		t.Fatal("out-of-range Set changed the board")
	}
	if b.Alive(-1, -1) || b.Alive(5, 5) {
		t.Fatal("cells off the board must read as dead")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, 2, 2)
	b.Set(0, 0, true)
	c := b.Clone()
	c.Set(1, 1, true)
	if b.Alive(1, 1) {
		t.Fatal("clone shares storage with original")
	}
	if b.Equal(c) {
		t.Fatal("boards with different cells compare equal")
	}
	c.Clear()
	if c.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
}
