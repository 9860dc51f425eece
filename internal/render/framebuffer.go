package render

import "github.com/pkg/errors"

// ErrInvalidSize is returned for framebuffers with a non-positive dimension.
var ErrInvalidSize = errors.New("invalid framebuffer size")

// Framebuffer is a software pixel buffer addressed as y*width + x.
type Framebuffer struct {
	w, h       int
	pixels     []Color
	current    Color
	background Color
}

// NewFramebuffer allocates a w*h buffer cleared to black. The drawing color
// starts out white.
func NewFramebuffer(w, h int) (*Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", w, h)
	}
	return &Framebuffer{
		w:          w,
		h:          h,
		pixels:     make([]Color, w*h),
		current:    White,
		background: Black,
	}, nil
}

// Width returns the buffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.w }

// Height returns the buffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.h }

// Pixels exposes the row-major pixel slice.
func (fb *Framebuffer) Pixels() []Color { return fb.pixels }

// SetCurrentColor sets the color used by Point.
func (fb *Framebuffer) SetCurrentColor(c Color) { fb.current = c }

// SetBackgroundColor sets the color used by Clear.
func (fb *Framebuffer) SetBackgroundColor(c Color) { fb.background = c }

// Clear fills every pixel with the background color.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = fb.background
	}
}

// Point writes the current color at (x, y). Out-of-range coordinates are
// ignored.
func (fb *Framebuffer) Point(x, y int) {
	if x < 0 || x >= fb.w || y < 0 || y >= fb.h {
		return
	}
	fb.pixels[y*fb.w+x] = fb.current
}

// At returns the pixel at (x, y), or the background color when out of range.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= fb.w || y < 0 || y >= fb.h {
		return fb.background
	}
	return fb.pixels[y*fb.w+x]
}

// Packed writes the buffer as packed 0x00RRGGBB values into dst, growing it if
// needed, and returns the w*h prefix.
func (fb *Framebuffer) Packed(dst []uint32) []uint32 {
	n := len(fb.pixels)
	if cap(dst) < n {
		dst = make([]uint32, n)
	}
	dst = dst[:n]
	for i, c := range fb.pixels {
		dst[i] = c.Packed()
	}
	return dst
}
