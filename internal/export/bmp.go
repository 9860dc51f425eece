// Package export writes packed frames to bitmap files.
package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"lifebuf/internal/render"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ToImage converts a packed 0x00RRGGBB frame into an opaque RGBA image,
// magnified by scale with nearest-neighbor sampling.
func ToImage(pixels []uint32, w, h, scale int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("invalid frame size %dx%d", w, h)
	}
	if len(pixels) != w*h {
		return nil, errors.Errorf("frame has %d pixels, want %d", len(pixels), w*h)
	}
	if scale <= 0 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, v := range pixels {
		c := render.Unpack(v)
		base := i * 4
		img.Pix[base+0] = c.R
		img.Pix[base+1] = c.G
		img.Pix[base+2] = c.B
		img.Pix[base+3] = 0xff
	}
	if scale == 1 {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// WriteBMP encodes a packed frame as a 24-bit BMP.
func WriteBMP(out io.Writer, pixels []uint32, w, h, scale int) error {
	img, err := ToImage(pixels, w, h, scale)
	if err != nil {
		return err
	}
	return errors.Wrap(bmp.Encode(out, img), "encode bmp")
}

// SaveBMP writes a packed frame to path.
func SaveBMP(path string, pixels []uint32, w, h, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create bitmap")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close bitmap")
		}
	}()
	return WriteBMP(f, pixels, w, h, scale)
}

// FrameDumper is an app.Sink that writes every Every-th frame to Dir as
// <Prefix>_<frame>.bmp.
type FrameDumper struct {
	Dir    string
	Prefix string
	Every  int
	Scale  int

	frame   int
	written []string
}

// Present writes the frame if it falls on the dump interval.
func (d *FrameDumper) Present(pixels []uint32, w, h int) error {
	n := d.frame
	d.frame++
	every := d.Every
	if every <= 0 {
		every = 1
	}
	if n%every != 0 {
		return nil
	}
	prefix := d.Prefix
	if prefix == "" {
		prefix = "frame"
	}
	path := filepath.Join(d.Dir, fmt.Sprintf("%s_%06d.bmp", prefix, n))
	if err := SaveBMP(path, pixels, w, h, d.Scale); err != nil {
		return err
	}
	d.written = append(d.written, path)
	return nil
}

// Written lists the files produced so far.
func (d *FrameDumper) Written() []string { return d.written }
