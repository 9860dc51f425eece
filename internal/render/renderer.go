//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a packed frame into an ebiten image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a framebuffer of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads a packed 0x00RRGGBB frame of size w*h into the painter image
// and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, pixels []uint32, w, h, scale int) {
	if w != gp.w || h != gp.h || len(pixels) != w*h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	FillRGBA(gp.buf, pixels)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
