/*
Package spray converts raster images into single-texture WAD3 archives
suitable for use as in-game spray decals with GoldSrc engine games.
*/
package spray

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"

	"github.com/bodgit/spray/wad"
	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
)

// Maximum pixel budgets accepted by the stock engine builds.
const (
	MaxPixelHalfLife      = 12288
	MaxPixelCounterStrike = 14336
)

type Encoder struct {
	maxPixel  int
	quantizer draw.Quantizer
	logger    *log.Logger
}

func New(maxPixel int, logger *log.Logger) (*Encoder, error) {
	if maxPixel < 1 {
		return nil, errors.New("spray: pixel budget must be positive")
	}
	return &Encoder{
		maxPixel:  maxPixel,
		quantizer: &quantize.MedianCutQuantizer{AddTransparent: true},
		logger:    logger,
	}, nil
}

// SetQuantizer replaces the color reduction step. The quantizer must return
// a palette of no more than the requested number of colors.
func (e *Encoder) SetQuantizer(q draw.Quantizer) {
	e.quantizer = q
}

// EncodeImage writes the image m to w as a WAD3 spray decal, scaling it to
// fit within the configured pixel budget.
func (e *Encoder) EncodeImage(w io.Writer, m image.Image) error {
	b := m.Bounds()

	tw, th, err := fit(b.Dx(), b.Dy(), e.maxPixel)
	if err != nil {
		return err
	}

	e.logger.Printf("fitting %dx%d into %dx%d\n", b.Dx(), b.Dy(), tw, th)

	// The aspect ratio was honored when choosing the target dimensions;
	// this stretch only forces the exact pixel size
	g := gift.New(gift.Resize(tw, th, gift.LanczosResampling))
	resized := image.NewNRGBA(g.Bounds(b))
	g.Draw(resized, m)

	pm := image.NewPaletted(resized.Bounds(), e.quantizer.Quantize(make(color.Palette, 0, wad.MaxColors), resized))
	draw.Draw(pm, pm.Bounds(), resized, resized.Bounds().Min, draw.Src)

	return wad.Encode(w, pm)
}

// Encode decodes an image from r in any registered format and writes it to
// w as a WAD3 spray decal.
func (e *Encoder) Encode(w io.Writer, r io.Reader) error {
	m, _, err := image.Decode(r)
	if err != nil {
		return err
	}
	return e.EncodeImage(w, m)
}
