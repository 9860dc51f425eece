package render

import (
	"testing"

	"lifebuf/internal/core"

	"github.com/pkg/errors"
)

func mustFramebuffer(t *testing.T, w, h int) *Framebuffer {
	t.Helper()
	fb, err := NewFramebuffer(w, h)
	if err != nil {
		t.Fatalf("NewFramebuffer(%d, %d): %v", w, h, err)
	}
	return fb
}

func TestNewFramebufferRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-4, 4}} {
		if _, err := NewFramebuffer(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewFramebuffer(%v) err = %v", dims, err)
		}
	}
}

func TestNewFramebufferStartsBlack(t *testing.T) {
	fb := mustFramebuffer(t, 4, 3)
	if len(fb.Pixels()) != 12 {
		t.Fatalf("len = %d, want 12", len(fb.Pixels()))
	}
	for i, c := range fb.Pixels() {
		if c != Black {
			t.Fatalf("pixel %d = %+v, want black", i, c)
		}
	}
}

func TestPointAndClear(t *testing.T) {
	fb := mustFramebuffer(t, 4, 3)
	red := NewColor(255, 0, 0)
	fb.SetCurrentColor(red)
	fb.Point(3, 2)
	if fb.Pixels()[2*4+3] != red {
		t.Fatal("Point did not write at y*w+x")
	}
	if fb.At(3, 2) != red {
		t.Fatal("At disagrees with Point")
	}

	blue := NewColor(0, 0, 255)
	fb.SetBackgroundColor(blue)
	fb.Clear()
	for i, c := range fb.Pixels() {
		if c != blue {
			t.Fatalf("pixel %d = %+v after Clear, want background", i, c)
		}
	}
}

func TestPointOutOfRangeIsNoOp(t *testing.T) {
	fb := mustFramebuffer(t, 3, 3)
	fb.SetCurrentColor(White)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		fb.Point(p[0], p[1])
	}
	for i, c := range fb.Pixels() {
		if c != Black {
			t.Fatalf("out-of-range Point changed pixel %d", i)
		}
	}
}

func TestPackedFrame(t *testing.T) {
	fb := mustFramebuffer(t, 2, 2)
	fb.SetCurrentColor(NewColor(1, 2, 3))
	fb.Point(1, 0)

	out := fb.Packed(nil)
	want := []uint32{0, 0x010203, 0, 0}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("packed[%d] = %#x, want %#x", i, out[i], want[i])
		}
	}

	reused := fb.Packed(make([]uint32, 0, 16))
	if len(reused) != 4 || cap(reused) != 16 {
		t.Fatalf("Packed did not reuse dst: len=%d cap=%d", len(reused), cap(reused))
	}
}

func TestPaletteProject(t *testing.T) {
	fb := mustFramebuffer(t, 3, 2)
	p := Palette{Alive: NewColor(0, 255, 0), Dead: NewColor(10, 10, 10)}
	cells := []bool{
		true, false, false,
		false, false, true,
	}
	p.Project(fb, core.Size{W: 3, H: 2}, cells)

	for i, alive := range cells {
		want := p.Dead
		if alive {
			want = p.Alive
		}
		if fb.Pixels()[i] != want {
			t.Fatalf("pixel %d = %+v, want %+v", i, fb.Pixels()[i], want)
		}
	}
}

func TestFillRGBA(t *testing.T) {
	fb, err := NewFramebuffer(2, 1)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	fb.SetCurrentColor(NewColor(1, 2, 3))
	fb.Point(0, 0)
	fb.SetCurrentColor(NewColor(4, 5, 6))
	fb.Point(1, 0)

	buf := make([]byte, 8)
	FillRGBA(buf, fb.Packed(nil))
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}
