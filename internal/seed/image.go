package seed

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"lifebuf/internal/config"
	"lifebuf/internal/core"
	"lifebuf/internal/life"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image seeds the board from a raster file. Pure black pixels become dead
// cells and every other pixel becomes a live cell.
type Image struct {
	Path string
}

// Name identifies the strategy.
func (s *Image) Name() string { return "image:" + s.Path }

// Seed decodes the file and thresholds it onto a board of the given size.
func (s *Image) Seed(size core.Size) (*life.Board, error) {
	img, err := LoadImage(s.Path)
	if err != nil {
		return nil, err
	}
	return FromImage(img, size)
}

// LoadImage decodes any registered raster format.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}
	return img, nil
}

// FromImage resizes img to size with nearest-neighbor sampling when the
// dimensions differ, then marks a cell alive iff its pixel is not (0,0,0).
// Fully transparent pixels read as black whether or not a resize happened.
func FromImage(img image.Image, size core.Size) (*life.Board, error) {
	b, err := life.NewBoard(size)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errors.New("image has no pixels")
	}

	src := img
	if bounds.Dx() != size.W || bounds.Dy() != size.H {
		dst := image.NewNRGBA(image.Rect(0, 0, size.W, size.H))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		src = dst
	}

	origin := src.Bounds().Min
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := color.NRGBAModel.Convert(src.At(origin.X+x, origin.Y+y)).(color.NRGBA)
			b.Set(x, y, c.A != 0 && c.R|c.G|c.B != 0)
		}
	}
	return b, nil
}

func newImage(cfg config.Seed) (Strategy, error) {
	if cfg.Image == "" {
		return nil, errors.New("image strategy requires a path")
	}
	return &Image{Path: cfg.Image}, nil
}

func init() {
	Register(config.StrategyImage, newImage)
}
