package spray

import (
	"errors"
	"math"

	"github.com/bodgit/spray/wad"
)

var (
	// ErrInvalidImage is returned for a source image with an unknown or
	// zero width or height.
	ErrInvalidImage = errors.New("spray: invalid image")
	// ErrInvalidImageSize is returned when no target size satisfies both
	// the pixel budget and the alignment constraint.
	ErrInvalidImageSize = errors.New("spray: invalid image size")
)

// Compute target dimensions that are multiples of the texture alignment,
// preserve the source aspect ratio and whose product stays within the pixel
// budget.
func fit(fw, fh, maxPixel int) (int, int, error) {
	if fw <= 0 || fh <= 0 {
		return 0, 0, ErrInvalidImage
	}

	scale := math.Sqrt(float64(maxPixel) / float64(fw*fh))

	// Flooring to the alignment undershoots the budget more often than
	// not, the loop below corrects the remaining overshoot
	w := int(math.Floor(float64(fw)*scale/wad.Align)) * wad.Align
	h := int(math.Floor(float64(fh)*scale/wad.Align)) * wad.Align

	if w == 0 {
		w = wad.Align
	}
	if h == 0 {
		h = wad.Align
	}

	for w*h > maxPixel {
		if w >= h {
			w -= wad.Align
		} else {
			h -= wad.Align
		}
		if w <= 0 || h <= 0 {
			return 0, 0, ErrInvalidImageSize
		}
	}

	return w, h, nil
}
