package render

import "lifebuf/internal/core"

// Palette maps cell states to colors.
type Palette struct {
	Alive Color
	Dead  Color
}

// DefaultPalette draws live cells white on black.
func DefaultPalette() Palette {
	return Palette{Alive: White, Dead: Black}
}

// Project draws one pixel per cell into fb. Cells beyond the framebuffer are
// dropped by Point.
func (p Palette) Project(fb *Framebuffer, size core.Size, cells []bool) {
	fb.SetBackgroundColor(p.Dead)
	fb.Clear()
	fb.SetCurrentColor(p.Alive)
	for y := 0; y < size.H; y++ {
		row := y * size.W
		for x := 0; x < size.W; x++ {
			idx := row + x
			if idx < len(cells) && cells[idx] {
				fb.Point(x, y)
			}
		}
	}
}
