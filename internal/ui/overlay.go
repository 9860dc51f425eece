//go:build ebiten

package ui

import (
	"image/color"

	"lifebuf/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional cell grid lines over the magnified board.
type Overlay struct {
	size     core.Size
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	// Lines would cover the cells entirely below this magnification.
	if !o.showGrid || o.scale < 3 {
		return
	}
	col := color.RGBA{R: 60, G: 60, B: 70, A: 255}
	w := float64(o.size.W * o.scale)
	h := float64(o.size.H * o.scale)
	for x := 1; x < o.size.W; x++ {
		o.drawRect(screen, float64(x*o.scale), 0, 1, h, col)
	}
	for y := 1; y < o.size.H; y++ {
		o.drawRect(screen, 0, float64(y*o.scale), w, 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
