package spray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	tables := []struct {
		fw, fh, maxPixel int
		w, h             int
	}{
		{256, 256, 12288, 96, 96},
		{200, 100, 12288, 144, 64},
		{512, 512, 14336, 112, 112},
		{1000, 10, 12288, 768, 16},
		{16, 16, 12288, 96, 96},
	}

	for _, table := range tables {
		w, h, err := fit(table.fw, table.fh, table.maxPixel)
		require.Nil(t, err)
		assert.Equal(t, table.w, w)
		assert.Equal(t, table.h, h)
	}
}

func TestFitSquare(t *testing.T) {
	// Square images of any resolution fit to the same dimensions for a
	// given pixel budget
	for _, size := range []int{16, 64, 256, 333, 1024, 4096} {
		w, h, err := fit(size, size, 12288)
		require.Nil(t, err)
		assert.Equal(t, 96, w)
		assert.Equal(t, 96, h)
	}
}

func TestFitProperties(t *testing.T) {
	for _, maxPixel := range []int{4096, 12288, 14336} {
		for fw := 10; fw <= 2000; fw += 97 {
			for fh := 10; fh <= 2000; fh += 83 {
				w, h, err := fit(fw, fh, maxPixel)
				require.Nil(t, err)
				assert.True(t, w > 0 && h > 0)
				assert.Zero(t, w%16)
				assert.Zero(t, h%16)
				assert.True(t, w*h <= maxPixel)
			}
		}
	}
}

func TestFitInvalid(t *testing.T) {
	_, _, err := fit(0, 100, 12288)
	assert.Equal(t, ErrInvalidImage, err)

	_, _, err = fit(100, 0, 12288)
	assert.Equal(t, ErrInvalidImage, err)

	// No multiple of 16 can satisfy a tiny budget
	_, _, err = fit(100, 100, 1)
	assert.Equal(t, ErrInvalidImageSize, err)
}
